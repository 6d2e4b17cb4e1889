package models

import "time"

// User is an account allowed into the dashboard. The password hash never
// marshals: the json tag is the last line of defense behind the SafeUser
// projection in the auth service.
type User struct {
	ID           string    `gorm:"primaryKey"      json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	Name         string    `json:"name"`
	Role         string    `gorm:"not null"        json:"role"`
	Active       bool      `gorm:"default:true"    json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NewsPost struct {
	ID          string     `gorm:"primaryKey"   json:"id"`
	TitleZh     string     `gorm:"not null"     json:"title_zh"`
	TitleEn     string     `json:"title_en"`
	ExcerptZh   string     `json:"excerpt_zh"`
	ExcerptEn   string     `json:"excerpt_en"`
	BodyZh      string     `json:"body_zh"`
	BodyEn      string     `json:"body_en"`
	ImageURL    *string    `json:"image_url"`
	Published   bool       `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LiveUpdate struct {
	ID        string    `gorm:"primaryKey"       json:"id"`
	TextZh    string    `gorm:"not null"         json:"text_zh"`
	TextEn    string    `json:"text_en"`
	Priority  string    `gorm:"not null;default:LOW" json:"priority"`
	Active    bool      `gorm:"default:true"     json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type AnnualReport struct {
	ID        string    `gorm:"primaryKey"    json:"id"`
	Year      int       `gorm:"index;not null" json:"year"`
	TitleZh   string    `json:"title_zh"`
	TitleEn   string    `json:"title_en"`
	FileKey   *string   `json:"file_key"`
	FileURL   *string   `json:"file_url"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

type YouTubeVideo struct {
	ID        string    `gorm:"primaryKey"      json:"id"`
	VideoID   string    `gorm:"unique;not null" json:"video_id"`
	TitleZh   string    `json:"title_zh"`
	TitleEn   string    `json:"title_en"`
	Thumbnail string    `json:"thumbnail"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Published bool      `gorm:"default:true"    json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

type PartnerSchool struct {
	ID        string    `gorm:"primaryKey"   json:"id"`
	NameZh    string    `gorm:"not null"     json:"name_zh"`
	NameEn    string    `json:"name_en"`
	Country   string    `gorm:"index"        json:"country"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Website   string    `json:"website"`
	Students  int       `json:"students"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HeroSlide struct {
	ID        string    `gorm:"primaryKey"   json:"id"`
	Locale    string    `gorm:"index;not null;default:zh" json:"locale"`
	Title     string    `gorm:"not null"     json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	CTALabel  string    `json:"cta_label"`
	CTAURL    string    `json:"cta_url"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Active    bool      `gorm:"default:true" json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Ranking struct {
	ID         string    `gorm:"primaryKey"    json:"id"`
	TitleZh    string    `gorm:"not null"      json:"title_zh"`
	TitleEn    string    `json:"title_en"`
	Value      string    `json:"value"`
	SourceName string    `json:"source_name"`
	Order      int       `gorm:"column:sort_order;default:0" json:"order"`
	Published  bool      `gorm:"default:false" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
}

type Alumnus struct {
	ID        string    `gorm:"primaryKey"   json:"id"`
	NameZh    string    `gorm:"not null"     json:"name_zh"`
	NameEn    string    `json:"name_en"`
	TitleZh   string    `json:"title_zh"`
	TitleEn   string    `json:"title_en"`
	ImageURL  string    `json:"image_url"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// All returns every entity for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&NewsPost{},
		&LiveUpdate{},
		&AnnualReport{},
		&YouTubeVideo{},
		&PartnerSchool{},
		&HeroSlide{},
		&Ranking{},
		&Alumnus{},
	}
}
