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

// SchoolHandler serves the partner-school map data.
type SchoolHandler struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (h *SchoolHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "schools.list")

	schools, err := h.Repo.ActiveSchools(ctx)
	if err != nil {
		l.Error("schools_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, schools)
}

func (h *SchoolHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "schools.create")

	var req transport.CreateSchoolRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("school_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.NameZh == "" {
		return respondErr(c, http.StatusBadRequest, "name_zh is required")
	}

	school := models.PartnerSchool{
		NameZh:    req.NameZh,
		NameEn:    req.NameEn,
		Country:   req.Country,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Website:   req.Website,
		Students:  req.Students,
		Active:    true,
	}
	if req.Active != nil {
		school.Active = *req.Active
	}

	if err := h.Repo.CreateSchool(ctx, &school); err != nil {
		l.Error("school_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "school_created", "partner_school", school.ID)
	return respondOK(c, http.StatusCreated, school)
}

func (h *SchoolHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "schools.update")

	var req transport.UpdateSchoolRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("school_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	school, err := h.Repo.SchoolByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("school_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.NameZh != nil {
		school.NameZh = *req.NameZh
	}
	if req.NameEn != nil {
		school.NameEn = *req.NameEn
	}
	if req.Country != nil {
		school.Country = *req.Country
	}
	if req.City != nil {
		school.City = *req.City
	}
	if req.Latitude != nil {
		school.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		school.Longitude = *req.Longitude
	}
	if req.Website != nil {
		school.Website = *req.Website
	}
	if req.Students != nil {
		school.Students = *req.Students
	}
	if req.Active != nil {
		school.Active = *req.Active
	}

	if err := h.Repo.SaveSchool(ctx, school); err != nil {
		l.Error("school_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "school_updated", "partner_school", school.ID)
	return respondOK(c, http.StatusOK, school)
}

func (h *SchoolHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "schools.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteSchool(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("school_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "school_deleted", "partner_school", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
