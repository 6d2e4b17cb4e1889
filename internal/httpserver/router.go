package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/middleware"
)

type Deps struct {
	Auth        *AuthHTTP
	News        *NewsHandler
	LiveUpdates *LiveUpdateHandler
	Hero        *HeroHandler
	Rankings    *RankingHandler
	Reports     *ReportHandler
	YouTube     *YouTubeHandler
	Schools     *SchoolHandler
	Alumni      *AlumniHandler
	Stats       *StatsHandler
	JWTSecret   []byte
}

func Register(e *echo.Echo, d *Deps) {
	health(e)

	authMw := middleware.NewSessionAuth(d.JWTSecret)

	api := e.Group("/api")

	api.POST("/auth/login", d.Auth.Login)
	api.GET("/auth/me", d.Auth.Me, authMw.RequireAuth)
	api.POST("/auth/logout", d.Auth.Logout)

	api.GET("/news", d.News.List)
	api.GET("/news/search", d.News.Search)
	api.GET("/news/:id", d.News.Get)
	api.GET("/live-updates", d.LiveUpdates.List)
	api.GET("/hero", d.Hero.List)
	api.GET("/rankings/public", d.Rankings.Public)
	api.GET("/annual-reports", d.Reports.List)
	api.GET("/annual-reports/:id/download", d.Reports.Download)
	api.GET("/youtube", d.YouTube.List)
	api.GET("/worldmap/schools", d.Schools.List)
	api.GET("/alumni", d.Alumni.List)

	dash := api.Group("/dashboard", authMw.RequireAdmin)

	dash.GET("/stats", d.Stats.Get)

	dash.GET("/news", d.News.ListAll)
	dash.POST("/news", d.News.Create)
	dash.PUT("/news/:id", d.News.Update)
	dash.DELETE("/news/:id", d.News.Delete)

	dash.POST("/live-updates", d.LiveUpdates.Create)
	dash.PUT("/live-updates/:id", d.LiveUpdates.Update)
	dash.DELETE("/live-updates/:id", d.LiveUpdates.Delete)

	dash.GET("/hero", d.Hero.ListAll)
	dash.POST("/hero/upload-url", d.Hero.UploadURL)
	dash.POST("/hero", d.Hero.Create)
	dash.PUT("/hero/:id", d.Hero.Update)
	dash.DELETE("/hero/:id", d.Hero.Delete)

	dash.POST("/rankings", d.Rankings.Create)
	dash.PUT("/rankings/:id", d.Rankings.Update)
	dash.DELETE("/rankings/:id", d.Rankings.Delete)

	dash.POST("/reports", d.Reports.Create)
	dash.POST("/reports/:id/upload-url", d.Reports.UploadURL)
	dash.PUT("/reports/:id", d.Reports.Update)
	dash.DELETE("/reports/:id", d.Reports.Delete)

	dash.POST("/youtube", d.YouTube.Create)
	dash.PUT("/youtube/:id", d.YouTube.Update)
	dash.DELETE("/youtube/:id", d.YouTube.Delete)

	dash.POST("/alumni", d.Alumni.Create)
	dash.PUT("/alumni/:id", d.Alumni.Update)
	dash.DELETE("/alumni/:id", d.Alumni.Delete)

	// school mutations live under /worldmap for legacy client compatibility
	worldmap := api.Group("/worldmap", authMw.RequireAdmin)
	worldmap.POST("/schools", d.Schools.Create)
	worldmap.PUT("/schools/:id", d.Schools.Update)
	worldmap.DELETE("/schools/:id", d.Schools.Delete)
}
