package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/transport"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

type AlumniHandler struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (h *AlumniHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "alumni.list")

	alumni, err := h.Repo.ActiveAlumni(ctx)
	if err != nil {
		l.Error("alumni_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, alumni)
}

func (h *AlumniHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "alumni.create")

	var req transport.CreateAlumnusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("alumnus_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.NameZh == "" {
		return respondErr(c, http.StatusBadRequest, "name_zh is required")
	}

	alumnus := models.Alumnus{
		NameZh:   req.NameZh,
		NameEn:   req.NameEn,
		TitleZh:  req.TitleZh,
		TitleEn:  req.TitleEn,
		ImageURL: req.ImageURL,
		Order:    req.Order,
		Active:   true,
	}
	if req.Active != nil {
		alumnus.Active = *req.Active
	}

	if err := h.Repo.CreateAlumnus(ctx, &alumnus); err != nil {
		l.Error("alumnus_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "alumnus_created", "alumnus", alumnus.ID)
	return respondOK(c, http.StatusCreated, alumnus)
}

func (h *AlumniHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "alumni.update")

	var req transport.UpdateAlumnusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("alumnus_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	alumnus, err := h.Repo.AlumnusByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("alumnus_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.NameZh != nil {
		alumnus.NameZh = *req.NameZh
	}
	if req.NameEn != nil {
		alumnus.NameEn = *req.NameEn
	}
	if req.TitleZh != nil {
		alumnus.TitleZh = *req.TitleZh
	}
	if req.TitleEn != nil {
		alumnus.TitleEn = *req.TitleEn
	}
	if req.ImageURL != nil {
		alumnus.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		alumnus.Order = *req.Order
	}
	if req.Active != nil {
		alumnus.Active = *req.Active
	}

	if err := h.Repo.SaveAlumnus(ctx, alumnus); err != nil {
		l.Error("alumnus_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "alumnus_updated", "alumnus", alumnus.ID)
	return respondOK(c, http.StatusOK, alumnus)
}

func (h *AlumniHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "alumni.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteAlumnus(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("alumnus_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "alumnus_deleted", "alumnus", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
