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

type YouTubeHandler struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (h *YouTubeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "youtube.list")

	videos, err := h.Repo.PublishedVideos(ctx)
	if err != nil {
		l.Error("youtube_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, videos)
}

func (h *YouTubeHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "youtube.create")

	var req transport.CreateVideoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("youtube_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.VideoID == "" {
		return respondErr(c, http.StatusBadRequest, "video_id is required")
	}

	video := models.YouTubeVideo{
		VideoID:   req.VideoID,
		TitleZh:   req.TitleZh,
		TitleEn:   req.TitleEn,
		Thumbnail: req.Thumbnail,
		Order:     req.Order,
		Published: true,
	}
	if req.Published != nil {
		video.Published = *req.Published
	}

	if err := h.Repo.CreateVideo(ctx, &video); err != nil {
		l.Error("youtube_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "video_created", "youtube_video", video.ID)
	return respondOK(c, http.StatusCreated, video)
}

func (h *YouTubeHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "youtube.update")

	var req transport.UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("youtube_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	video, err := h.Repo.VideoByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("youtube_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.VideoID != nil {
		video.VideoID = *req.VideoID
	}
	if req.TitleZh != nil {
		video.TitleZh = *req.TitleZh
	}
	if req.TitleEn != nil {
		video.TitleEn = *req.TitleEn
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}
	if req.Order != nil {
		video.Order = *req.Order
	}
	if req.Published != nil {
		video.Published = *req.Published
	}

	if err := h.Repo.SaveVideo(ctx, video); err != nil {
		l.Error("youtube_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "video_updated", "youtube_video", video.ID)
	return respondOK(c, http.StatusOK, video)
}

func (h *YouTubeHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "youtube.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteVideo(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("youtube_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "video_deleted", "youtube_video", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
