package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/search"
	"github.com/cmyzu/campus-backend/internal/transport"
	"github.com/cmyzu/campus-backend/internal/util"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

type NewsHandler struct {
	Repo   *repo.GormRepo
	Index  *search.NewsIndex // nil when ES is not configured
	Events events.Publisher
}

// List serves GET /api/news?limit=&search=. The search param is a
// case-insensitive substring match over both locales' title and excerpt;
// limit slices after filtering.
func (h *NewsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.list")

	limit := util.ParseIntDefault(c.QueryParam("limit"), 0)
	searchTerm := strings.ToLower(strings.TrimSpace(c.QueryParam("search")))

	fetchLimit := limit
	if searchTerm != "" {
		fetchLimit = 0
	}
	posts, err := h.Repo.PublishedNews(ctx, fetchLimit)
	if err != nil {
		l.Error("news_list_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	items := make([]transport.NewsItem, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if searchTerm != "" && !matchesNews(p, searchTerm) {
			continue
		}
		items = append(items, transport.NewsItemFrom(p))
		if limit > 0 && len(items) == limit {
			break
		}
	}

	return respondOK(c, http.StatusOK, items)
}

func matchesNews(p *models.NewsPost, term string) bool {
	for _, field := range []string{p.TitleZh, p.TitleEn, p.ExcerptZh, p.ExcerptEn} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (h *NewsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.get")

	post, err := h.Repo.PublishedNewsByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("news_get_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	return respondOK(c, http.StatusOK, transport.NewsItemFrom(post))
}

// Search serves GET /api/news/search?q=&page=&size= against Elasticsearch.
func (h *NewsHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.search")

	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return respondErr(c, http.StatusBadRequest, "q is required")
	}
	if h.Index == nil {
		return respondErr(c, http.StatusServiceUnavailable, "search is not available")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, posts, err := h.Index.Search(ctx, q, from, size)
	if err != nil {
		l.Error("news_search_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	items := make([]transport.NewsItem, len(posts))
	for i := range posts {
		items[i] = transport.NewsItemFrom(&posts[i])
	}
	return respondOK(c, http.StatusOK, echo.Map{"total": total, "items": items})
}

// ListAll serves the dashboard listing, drafts included.
func (h *NewsHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.list_all")

	posts, err := h.Repo.AllNews(ctx)
	if err != nil {
		l.Error("news_list_all_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}
	return respondOK(c, http.StatusOK, posts)
}

func (h *NewsHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.create")

	var req transport.CreateNewsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("news_create_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if req.TitleZh == "" {
		return respondErr(c, http.StatusBadRequest, "title_zh is required")
	}

	post := models.NewsPost{
		TitleZh:   req.TitleZh,
		TitleEn:   req.TitleEn,
		ExcerptZh: req.ExcerptZh,
		ExcerptEn: req.ExcerptEn,
		BodyZh:    req.BodyZh,
		BodyEn:    req.BodyEn,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := h.Repo.CreateNews(ctx, &post); err != nil {
		l.Error("news_create_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	h.syncIndex(c, &post)
	publishContent(c, h.Events, "news_created", "news", post.ID)
	return respondOK(c, http.StatusCreated, post)
}

func (h *NewsHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.update")

	var req transport.UpdateNewsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("news_update_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}

	post, err := h.Repo.NewsByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("news_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if req.TitleZh != nil {
		post.TitleZh = *req.TitleZh
	}
	if req.TitleEn != nil {
		post.TitleEn = *req.TitleEn
	}
	if req.ExcerptZh != nil {
		post.ExcerptZh = *req.ExcerptZh
	}
	if req.ExcerptEn != nil {
		post.ExcerptEn = *req.ExcerptEn
	}
	if req.BodyZh != nil {
		post.BodyZh = *req.BodyZh
	}
	if req.BodyEn != nil {
		post.BodyEn = *req.BodyEn
	}
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}
	if req.Published != nil {
		if *req.Published && !post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	if err := h.Repo.SaveNews(ctx, post); err != nil {
		l.Error("news_update_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	h.syncIndex(c, post)
	publishContent(c, h.Events, "news_updated", "news", post.ID)
	return respondOK(c, http.StatusOK, post)
}

func (h *NewsHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "news.delete")
	id := c.Param("id")

	if err := h.Repo.DeleteNews(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return respondErr(c, http.StatusNotFound, msgNotFound)
		}
		l.Error("news_delete_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	if h.Index != nil {
		if err := h.Index.DeletePost(ctx, id); err != nil {
			l.Error("news_index_sync_failed", "id", id, "error", err)
		}
	}
	publishContent(c, h.Events, "news_deleted", "news", id)
	return respondOK(c, http.StatusOK, echo.Map{"id": id})
}

// syncIndex mirrors the post into ES, best-effort.
func (h *NewsHandler) syncIndex(c echo.Context, post *models.NewsPost) {
	if h.Index == nil {
		return
	}
	ctx := c.Request().Context()
	if err := h.Index.IndexPost(ctx, post); err != nil {
		logging.FromContext(ctx).Error("news_index_sync_failed", "id", post.ID, "error", err)
	}
}
