package repo

import (
	"context"

	"github.com/cmyzu/campus-backend/internal/models"
)

// DashboardStats is the entity-count summary for the admin landing page.
type DashboardStats struct {
	News        int64 `json:"news"`
	LiveUpdates int64 `json:"live_updates"`
	Reports     int64 `json:"reports"`
	Videos      int64 `json:"videos"`
	Schools     int64 `json:"schools"`
	HeroSlides  int64 `json:"hero_slides"`
	Rankings    int64 `json:"rankings"`
	Alumni      int64 `json:"alumni"`
}

func (r *GormRepo) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.NewsPost{}, &stats.News},
		{&models.LiveUpdate{}, &stats.LiveUpdates},
		{&models.AnnualReport{}, &stats.Reports},
		{&models.YouTubeVideo{}, &stats.Videos},
		{&models.PartnerSchool{}, &stats.Schools},
		{&models.HeroSlide{}, &stats.HeroSlides},
		{&models.Ranking{}, &stats.Rankings},
		{&models.Alumnus{}, &stats.Alumni},
	}
	for _, c := range counts {
		if err := r.DB.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
