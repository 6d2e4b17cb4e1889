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

type ReportHandler struct {
	Repo   *repo.GormRepo
	Signer storage.URLSigner // nil when S3 is not configured
	Events events.Publisher
}

func (h *ReportHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.list")

	reports, err := h.Repo.PublishedReports(ctx)
	if err != nil {
		l.Error("reports_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, reports)
}

func (h *ReportHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.create")

	var req transport.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("report_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.Year <= 0 {
		return respondErr(c, http.StatusBadRequest, "year is required")
	}

	report := models.AnnualReport{
		Year:      req.Year,
		TitleZh:   req.TitleZh,
		TitleEn:   req.TitleEn,
		Published: req.Published,
	}

	if err := h.Repo.CreateReport(ctx, &report); err != nil {
		l.Error("report_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "report_created", "annual_report", report.ID)
	return respondOK(c, http.StatusCreated, report)
}

// UploadURL hands the dashboard a presigned S3 PUT for the report PDF
// and records the object key on the report row.
func (h *ReportHandler) UploadURL(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.upload_url")

	if h.Signer == nil {
		return respondErr(c, http.StatusServiceUnavailable, "file storage is not available")
	}

	report, err := h.Repo.ReportByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("report_upload_url_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	key := storage.ReportKey(report.Year)
	url, err := h.Signer.PresignPut(ctx, key)
	if err != nil {
		l.Error("report_upload_url_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	report.FileKey = &key
	if err := h.Repo.SaveReport(ctx, report); err != nil {
		l.Error("report_upload_url_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "report_upload_requested", "annual_report", report.ID)
	return respondOK(c, http.StatusOK, transport.UploadURLResponse{Key: key, URL: url})
}

// Download redirects to a presigned GET for the stored PDF.
func (h *ReportHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.download")

	if h.Signer == nil {
		return respondErr(c, http.StatusServiceUnavailable, "file storage is not available")
	}

	report, err := h.Repo.ReportByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("report_download_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	if !report.Published || report.FileKey == nil {
		return respondErr(c, http.StatusNotFound, msgNotFound)
	}

	url, err := h.Signer.PresignGet(ctx, *report.FileKey)
	if err != nil {
		l.Error("report_download_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *ReportHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.update")

	var req transport.UpdateReportRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("report_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	report, err := h.Repo.ReportByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("report_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.Year != nil {
		report.Year = *req.Year
	}
	if req.TitleZh != nil {
		report.TitleZh = *req.TitleZh
	}
	if req.TitleEn != nil {
		report.TitleEn = *req.TitleEn
	}
	if req.FileKey != nil {
		report.FileKey = req.FileKey
	}
	if req.FileURL != nil {
		report.FileURL = req.FileURL
	}
	if req.Published != nil {
		report.Published = *req.Published
	}

	if err := h.Repo.SaveReport(ctx, report); err != nil {
		l.Error("report_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "report_updated", "annual_report", report.ID)
	return respondOK(c, http.StatusOK, report)
}

func (h *ReportHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reports.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteReport(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("report_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "report_deleted", "annual_report", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
