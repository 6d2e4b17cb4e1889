// Package transport holds the request/response shapes of the JSON API.
package transport

import (
	"time"

	"github.com/cmyzu/campus-backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewsItem is the public shape of a news post. Date is always set:
// published_at when present, created_at otherwise.
type NewsItem struct {
	ID        string    `json:"id"`
	TitleZh   string    `json:"title_zh"`
	TitleEn   string    `json:"title_en"`
	ExcerptZh string    `json:"excerpt_zh"`
	ExcerptEn string    `json:"excerpt_en"`
	BodyZh    string    `json:"body_zh"`
	BodyEn    string    `json:"body_en"`
	ImageURL  string    `json:"image_url"`
	Date      time.Time `json:"date"`
}

func NewsItemFrom(p *models.NewsPost) NewsItem {
	item := NewsItem{
		ID:        p.ID,
		TitleZh:   p.TitleZh,
		TitleEn:   p.TitleEn,
		ExcerptZh: p.ExcerptZh,
		ExcerptEn: p.ExcerptEn,
		BodyZh:    p.BodyZh,
		BodyEn:    p.BodyEn,
		Date:      p.CreatedAt,
	}
	if p.PublishedAt != nil {
		item.Date = *p.PublishedAt
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	return item
}

type CreateNewsRequest struct {
	TitleZh   string  `json:"title_zh"`
	TitleEn   string  `json:"title_en"`
	ExcerptZh string  `json:"excerpt_zh"`
	ExcerptEn string  `json:"excerpt_en"`
	BodyZh    string  `json:"body_zh"`
	BodyEn    string  `json:"body_en"`
	ImageURL  *string `json:"image_url"`
	Published bool    `json:"published"`
}

type UpdateNewsRequest struct {
	TitleZh   *string `json:"title_zh"`
	TitleEn   *string `json:"title_en"`
	ExcerptZh *string `json:"excerpt_zh"`
	ExcerptEn *string `json:"excerpt_en"`
	BodyZh    *string `json:"body_zh"`
	BodyEn    *string `json:"body_en"`
	ImageURL  *string `json:"image_url"`
	Published *bool   `json:"published"`
}

type CreateLiveUpdateRequest struct {
	TextZh   string `json:"text_zh"`
	TextEn   string `json:"text_en"`
	Priority string `json:"priority"`
	Active   *bool  `json:"active"`
}

type UpdateLiveUpdateRequest struct {
	TextZh   *string `json:"text_zh"`
	TextEn   *string `json:"text_en"`
	Priority *string `json:"priority"`
	Active   *bool   `json:"active"`
}

type CreateReportRequest struct {
	Year      int    `json:"year"`
	TitleZh   string `json:"title_zh"`
	TitleEn   string `json:"title_en"`
	Published bool   `json:"published"`
}

type UpdateReportRequest struct {
	Year      *int    `json:"year"`
	TitleZh   *string `json:"title_zh"`
	TitleEn   *string `json:"title_en"`
	FileKey   *string `json:"file_key"`
	FileURL   *string `json:"file_url"`
	Published *bool   `json:"published"`
}

type CreateVideoRequest struct {
	VideoID   string `json:"video_id"`
	TitleZh   string `json:"title_zh"`
	TitleEn   string `json:"title_en"`
	Thumbnail string `json:"thumbnail"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

type UpdateVideoRequest struct {
	VideoID   *string `json:"video_id"`
	TitleZh   *string `json:"title_zh"`
	TitleEn   *string `json:"title_en"`
	Thumbnail *string `json:"thumbnail"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

type CreateSchoolRequest struct {
	NameZh    string  `json:"name_zh"`
	NameEn    string  `json:"name_en"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Website   string  `json:"website"`
	Students  int     `json:"students"`
	Active    *bool   `json:"active"`
}

type UpdateSchoolRequest struct {
	NameZh    *string  `json:"name_zh"`
	NameEn    *string  `json:"name_en"`
	Country   *string  `json:"country"`
	City      *string  `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Website   *string  `json:"website"`
	Students  *int     `json:"students"`
	Active    *bool    `json:"active"`
}

type CreateHeroSlideRequest struct {
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
	CTALabel string `json:"cta_label"`
	CTAURL   string `json:"cta_url"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
}

type UpdateHeroSlideRequest struct {
	Locale   *string `json:"locale"`
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"image_url"`
	CTALabel *string `json:"cta_label"`
	CTAURL   *string `json:"cta_url"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

type CreateRankingRequest struct {
	TitleZh    string `json:"title_zh"`
	TitleEn    string `json:"title_en"`
	Value      string `json:"value"`
	SourceName string `json:"source_name"`
	Order      int    `json:"order"`
	Published  bool   `json:"published"`
}

type UpdateRankingRequest struct {
	TitleZh    *string `json:"title_zh"`
	TitleEn    *string `json:"title_en"`
	Value      *string `json:"value"`
	SourceName *string `json:"source_name"`
	Order      *int    `json:"order"`
	Published  *bool   `json:"published"`
}

type CreateAlumnusRequest struct {
	NameZh   string `json:"name_zh"`
	NameEn   string `json:"name_en"`
	TitleZh  string `json:"title_zh"`
	TitleEn  string `json:"title_en"`
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
}

type UpdateAlumnusRequest struct {
	NameZh   *string `json:"name_zh"`
	NameEn   *string `json:"name_en"`
	TitleZh  *string `json:"title_zh"`
	TitleEn  *string `json:"title_en"`
	ImageURL *string `json:"image_url"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

type UploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
