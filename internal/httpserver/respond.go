// Package httpserver holds the route handlers. Every response uses the
// `{success, data|error}` envelope except the legacy bare-array rankings
// endpoint. Raw error text never reaches a response body; it goes to the
// request logger only.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/middleware"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

func respondOK(c echo.Context, code int, data any) error {
	return c.JSON(code, echo.Map{"success": true, "data": data})
}

func respondErr(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "error": msg})
}

const (
	msgInvalidBody = "invalid request body"
	msgNotFound    = "resource not found"
	msgInternal    = "internal server error"
)

// publishContent emits a content_events record for a dashboard mutation.
// Failures are logged and swallowed; mutations never fail on the broker.
func publishContent(c echo.Context, pub events.Publisher, eventType, entity, id string) {
	if pub == nil {
		return
	}
	actor, _ := c.Get(middleware.UserIDKey).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	err := pub.Publish(ctx, events.TopicContent, id, map[string]any{
		"type":   eventType,
		"entity": entity,
		"id":     id,
		"actor":  actor,
	})
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed",
			"type", eventType, "entity", entity, "error", err)
	}
}

func health(e *echo.Echo) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
}
