package repo

import (
	"context"

	"github.com/cmyzu/campus-backend/internal/models"
)

func (r *GormRepo) PublishedReports(ctx context.Context) ([]models.AnnualReport, error) {
	var reports []models.AnnualReport
	if err := r.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("year DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *GormRepo) ReportByID(ctx context.Context, id string) (*models.AnnualReport, error) {
	var report models.AnnualReport
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &report, nil
}

func (r *GormRepo) CreateReport(ctx context.Context, report *models.AnnualReport) error {
	report.ID = newID(report.ID)
	return r.DB.WithContext(ctx).Create(report).Error
}

func (r *GormRepo) SaveReport(ctx context.Context, report *models.AnnualReport) error {
	return r.DB.WithContext(ctx).Save(report).Error
}

func (r *GormRepo) DeleteReport(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.AnnualReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) PublishedVideos(ctx context.Context) ([]models.YouTubeVideo, error) {
	var videos []models.YouTubeVideo
	if err := r.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *GormRepo) VideoByID(ctx context.Context, id string) (*models.YouTubeVideo, error) {
	var video models.YouTubeVideo
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &video, nil
}

func (r *GormRepo) CreateVideo(ctx context.Context, video *models.YouTubeVideo) error {
	video.ID = newID(video.ID)
	return r.DB.WithContext(ctx).Create(video).Error
}

func (r *GormRepo) SaveVideo(ctx context.Context, video *models.YouTubeVideo) error {
	return r.DB.WithContext(ctx).Save(video).Error
}

func (r *GormRepo) DeleteVideo(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.YouTubeVideo{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) ActiveSchools(ctx context.Context) ([]models.PartnerSchool, error) {
	var schools []models.PartnerSchool
	if err := r.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("country ASC, name_zh ASC").
		Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

func (r *GormRepo) SchoolByID(ctx context.Context, id string) (*models.PartnerSchool, error) {
	var school models.PartnerSchool
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&school).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &school, nil
}

func (r *GormRepo) CreateSchool(ctx context.Context, school *models.PartnerSchool) error {
	school.ID = newID(school.ID)
	return r.DB.WithContext(ctx).Create(school).Error
}

func (r *GormRepo) SaveSchool(ctx context.Context, school *models.PartnerSchool) error {
	return r.DB.WithContext(ctx).Save(school).Error
}

func (r *GormRepo) DeleteSchool(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.PartnerSchool{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveHeroSlides returns the slides for one locale in display order.
func (r *GormRepo) ActiveHeroSlides(ctx context.Context, locale string) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := r.DB.WithContext(ctx).
		Where("active = ? AND locale = ?", true, locale).
		Order("sort_order ASC").
		Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *GormRepo) AllHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := r.DB.WithContext(ctx).
		Order("locale ASC, sort_order ASC").
		Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *GormRepo) HeroSlideByID(ctx context.Context, id string) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&slide).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &slide, nil
}

func (r *GormRepo) CreateHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	slide.ID = newID(slide.ID)
	return r.DB.WithContext(ctx).Create(slide).Error
}

func (r *GormRepo) SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	return r.DB.WithContext(ctx).Save(slide).Error
}

func (r *GormRepo) DeleteHeroSlide(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.HeroSlide{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PublicRankings returns at most limit published rankings ordered by the
// curated sort order, newest first inside the same slot.
func (r *GormRepo) PublicRankings(ctx context.Context, limit int) ([]models.Ranking, error) {
	var rankings []models.Ranking
	if err := r.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("sort_order ASC, created_at DESC").
		Limit(limit).
		Find(&rankings).Error; err != nil {
		return nil, err
	}
	return rankings, nil
}

func (r *GormRepo) RankingByID(ctx context.Context, id string) (*models.Ranking, error) {
	var ranking models.Ranking
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&ranking).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &ranking, nil
}

func (r *GormRepo) CreateRanking(ctx context.Context, ranking *models.Ranking) error {
	ranking.ID = newID(ranking.ID)
	return r.DB.WithContext(ctx).Create(ranking).Error
}

func (r *GormRepo) SaveRanking(ctx context.Context, ranking *models.Ranking) error {
	return r.DB.WithContext(ctx).Save(ranking).Error
}

func (r *GormRepo) DeleteRanking(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Ranking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) ActiveAlumni(ctx context.Context) ([]models.Alumnus, error) {
	var alumni []models.Alumnus
	if err := r.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC").
		Find(&alumni).Error; err != nil {
		return nil, err
	}
	return alumni, nil
}

func (r *GormRepo) AlumnusByID(ctx context.Context, id string) (*models.Alumnus, error) {
	var a models.Alumnus
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (r *GormRepo) CreateAlumnus(ctx context.Context, a *models.Alumnus) error {
	a.ID = newID(a.ID)
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) SaveAlumnus(ctx context.Context, a *models.Alumnus) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *GormRepo) DeleteAlumnus(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Alumnus{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
