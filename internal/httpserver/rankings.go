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

// publicRankingLimit caps the homepage strip at three entries.
const publicRankingLimit = 3

type RankingHandler struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

// Public serves GET /api/rankings/public. Legacy contract: bare array,
// no envelope.
func (h *RankingHandler) Public(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rankings.public")

	rankings, err := h.Repo.PublicRankings(ctx, publicRankingLimit)
	if err != nil {
		l.Error("rankings_public_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return c.JSON(http.StatusOK, rankings)
}

func (h *RankingHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rankings.create")

	var req transport.CreateRankingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("ranking_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.TitleZh == "" {
		return respondErr(c, http.StatusBadRequest, "title_zh is required")
	}

	ranking := models.Ranking{
		TitleZh:    req.TitleZh,
		TitleEn:    req.TitleEn,
		Value:      req.Value,
		SourceName: req.SourceName,
		Order:      req.Order,
		Published:  req.Published,
	}

	if err := h.Repo.CreateRanking(ctx, &ranking); err != nil {
		l.Error("ranking_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "ranking_created", "ranking", ranking.ID)
	return respondOK(c, http.StatusCreated, ranking)
}

func (h *RankingHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rankings.update")

	var req transport.UpdateRankingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("ranking_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	ranking, err := h.Repo.RankingByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("ranking_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.TitleZh != nil {
		ranking.TitleZh = *req.TitleZh
	}
	if req.TitleEn != nil {
		ranking.TitleEn = *req.TitleEn
	}
	if req.Value != nil {
		ranking.Value = *req.Value
	}
	if req.SourceName != nil {
		ranking.SourceName = *req.SourceName
	}
	if req.Order != nil {
		ranking.Order = *req.Order
	}
	if req.Published != nil {
		ranking.Published = *req.Published
	}

	if err := h.Repo.SaveRanking(ctx, ranking); err != nil {
		l.Error("ranking_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "ranking_updated", "ranking", ranking.ID)
	return respondOK(c, http.StatusOK, ranking)
}

func (h *RankingHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rankings.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteRanking(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("ranking_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	publishContent(c, h.Events, "ranking_deleted", "ranking", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}
