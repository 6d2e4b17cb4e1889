package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/transport"
	"github.com/cmyzu/campus-backend/internal/util"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

var priorities = map[string]bool{
	"LOW":    true,
	"MEDIUM": true,
	"HIGH":   true,
	"URGENT": true,
}

type LiveUpdateHandler struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (h *LiveUpdateHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "live_updates.list")

	priority := c.QueryParam("priority")
	if priority != "" && !priorities[priority] {
		return respondErr(c, http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	limit := util.ParseIntDefault(c.QueryParam("limit"), 0)

	updates, err := h.Repo.ActiveLiveUpdates(ctx, priority, limit)
	if err != nil {
		l.Error("live_updates_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, updates)
}

func (h *LiveUpdateHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "live_updates.create")

	var req transport.CreateLiveUpdateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("live_update_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.TextZh == "" {
		return respondErr(c, http.StatusBadRequest, "text_zh is required")
	}
	if req.Priority == "" {
		req.Priority = "LOW"
	}
	if !priorities[req.Priority] {
		return respondErr(c, http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
	}

	update := models.LiveUpdate{
		TextZh:   req.TextZh,
		TextEn:   req.TextEn,
		Priority: req.Priority,
		Active:   true,
	}
	if req.Active != nil {
		update.Active = *req.Active
	}

	if err := h.Repo.CreateLiveUpdate(ctx, &update); err != nil {
		l.Error("live_update_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "live_update_created", "live_update", update.ID)
	return respondOK(c, http.StatusCreated, update)
}

func (h *LiveUpdateHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "live_updates.update")

	var req transport.UpdateLiveUpdateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("live_update_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.Priority != nil && !priorities[*req.Priority] {
		return respondErr(c, http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
	}

	update, err := h.Repo.LiveUpdateByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("live_update_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.TextZh != nil {
		update.TextZh = *req.TextZh
	}
	if req.TextEn != nil {
		update.TextEn = *req.TextEn
	}
	if req.Priority != nil {
		update.Priority = *req.Priority
	}
	if req.Active != nil {
		update.Active = *req.Active
	}

	if err := h.Repo.SaveLiveUpdate(ctx, update); err != nil {
		l.Error("live_update_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "live_update_updated", "live_update", update.ID)
	return respondOK(c, http.StatusOK, update)
}

func (h *LiveUpdateHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "live_updates.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteLiveUpdate(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("live_update_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "live_update_deleted", "live_update", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
