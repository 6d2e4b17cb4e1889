package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

type StatsHandler struct {
	Repo *repo.GormRepo
}

func (h *StatsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.stats")

	stats, err := h.Repo.Stats(ctx)
	if err != nil {
		l.Error("stats_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, stats)
}
