package repo

import (
	"context"

	"github.com/cmyzu/campus-backend/internal/models"
)

// ActiveLiveUpdates returns active updates, newest first, optionally
// narrowed to one priority. limit <= 0 means all.
func (r *GormRepo) ActiveLiveUpdates(ctx context.Context, priority string, limit int) ([]models.LiveUpdate, error) {
	q := r.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC")
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var updates []models.LiveUpdate
	if err := q.Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *GormRepo) LiveUpdateByID(ctx context.Context, id string) (*models.LiveUpdate, error) {
	var u models.LiveUpdate
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (r *GormRepo) CreateLiveUpdate(ctx context.Context, u *models.LiveUpdate) error {
	u.ID = newID(u.ID)
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) SaveLiveUpdate(ctx context.Context, u *models.LiveUpdate) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *GormRepo) DeleteLiveUpdate(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.LiveUpdate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
