package repo

import (
	"context"

	"github.com/cmyzu/campus-backend/internal/models"
)

// PublishedNews returns published posts, newest first. limit <= 0 means all.
func (r *GormRepo) PublishedNews(ctx context.Context, limit int) ([]models.NewsPost, error) {
	q := r.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var posts []models.NewsPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *GormRepo) PublishedNewsByID(ctx context.Context, id string) (*models.NewsPost, error) {
	var post models.NewsPost
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND published = ?", id, true).
		First(&post).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &post, nil
}

func (r *GormRepo) NewsByID(ctx context.Context, id string) (*models.NewsPost, error) {
	var post models.NewsPost
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &post, nil
}

func (r *GormRepo) AllNews(ctx context.Context) ([]models.NewsPost, error) {
	var posts []models.NewsPost
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *GormRepo) CreateNews(ctx context.Context, post *models.NewsPost) error {
	post.ID = newID(post.ID)
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *GormRepo) SaveNews(ctx context.Context, post *models.NewsPost) error {
	return r.DB.WithContext(ctx).Save(post).Error
}

func (r *GormRepo) DeleteNews(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.NewsPost{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
