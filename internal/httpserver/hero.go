package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/storage"
	"github.com/cmyzu/campus-backend/internal/transport"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

type HeroHandler struct {
	Repo   *repo.GormRepo
	Signer storage.URLSigner // nil when S3 is not configured
	Events events.Publisher
}

// UploadURL hands the dashboard a presigned S3 PUT for a slide image.
// The slide itself is created separately with the resulting key as its
// image URL.
func (h *HeroHandler) UploadURL(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.upload_url")

	if h.Signer == nil {
		return respondErr(c, http.StatusServiceUnavailable, "file storage is not available")
	}

	key := storage.HeroKey()
	url, err := h.Signer.PresignPut(ctx, key)
	if err != nil {
		l.Error("hero_upload_url_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, transport.UploadURLResponse{Key: key, URL: url})
}

// List serves GET /api/hero?locale=zh|en. Default locale is zh.
func (h *HeroHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.list")

	locale := c.QueryParam("locale")
	if locale == "" {
		locale = "zh"
	}
	if locale != "zh" && locale != "en" {
		return respondErr(c, http.StatusBadRequest, "locale must be zh or en")
	}

	slides, err := h.Repo.ActiveHeroSlides(ctx, locale)
	if err != nil {
		l.Error("hero_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, slides)
}

// ListAll serves the dashboard listing across locales, inactive included.
func (h *HeroHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.list_all")

	slides, err := h.Repo.AllHeroSlides(ctx)
	if err != nil {
		l.Error("hero_list_all_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, slides)
}

func (h *HeroHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.create")

	var req transport.CreateHeroSlideRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("hero_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.Locale == "" {
		req.Locale = "zh"
	}
	if req.Locale != "zh" && req.Locale != "en" {
		return respondErr(c, http.StatusBadRequest, "locale must be zh or en")
	}
	if req.Title == "" {
		return respondErr(c, http.StatusBadRequest, "title is required")
	}

	slide := models.HeroSlide{
		Locale:   req.Locale,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		CTALabel: req.CTALabel,
		CTAURL:   req.CTAURL,
		Order:    req.Order,
		Active:   true,
	}
	if req.Active != nil {
		slide.Active = *req.Active
	}

	if err := h.Repo.CreateHeroSlide(ctx, &slide); err != nil {
		l.Error("hero_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "hero_created", "hero_slide", slide.ID)
	return respondOK(c, http.StatusCreated, slide)
}

func (h *HeroHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.update")

	var req transport.UpdateHeroSlideRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("hero_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.Locale != nil && *req.Locale != "zh" && *req.Locale != "en" {
		return respondErr(c, http.StatusBadRequest, "locale must be zh or en")
	}

	slide, err := h.Repo.HeroSlideByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("hero_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.Locale != nil {
		slide.Locale = *req.Locale
	}
	if req.Title != nil {
		slide.Title = *req.Title
	}
	if req.Subtitle != nil {
		slide.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		slide.ImageURL = *req.ImageURL
	}
	if req.CTALabel != nil {
		slide.CTALabel = *req.CTALabel
	}
	if req.CTAURL != nil {
		slide.CTAURL = *req.CTAURL
	}
	if req.Order != nil {
		slide.Order = *req.Order
	}
	if req.Active != nil {
		slide.Active = *req.Active
	}

	if err := h.Repo.SaveHeroSlide(ctx, slide); err != nil {
		l.Error("hero_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "hero_updated", "hero_slide", slide.ID)
	return respondOK(c, http.StatusOK, slide)
}

func (h *HeroHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "hero.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteHeroSlide(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("hero_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "hero_deleted", "hero_slide", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
