package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/cmyzu/campus-backend/internal/models"
)

// NewsIndex wraps the ES index holding published news documents.
type NewsIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewNewsIndex(es *elasticsearch.Client, index string) *NewsIndex {
	return &NewsIndex{ES: es, Index: index}
}

// IndexPost upserts the document keyed by the post id. Unpublished posts
// are removed instead so drafts never surface in search.
func (n *NewsIndex) IndexPost(ctx context.Context, post *models.NewsPost) error {
	if !post.Published {
		return n.DeletePost(ctx, post.ID)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(post); err != nil {
		return fmt.Errorf("search: encode post: %w", err)
	}

	res, err := n.ES.Index(
		n.Index,
		&buf,
		n.ES.Index.WithDocumentID(post.ID),
		n.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index post: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index post: %s", res.Status())
	}
	return nil
}

func (n *NewsIndex) DeletePost(ctx context.Context, id string) error {
	res, err := n.ES.Delete(
		n.Index,
		id,
		n.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete post: %w", err)
	}
	defer res.Body.Close()
	// 404 is fine, the post was never indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete post: %s", res.Status())
	}
	return nil
}

// Search runs a fuzzy multi-match over both locales, titles boosted.
func (n *NewsIndex) Search(ctx context.Context, query string, from, size int) (int64, []models.NewsPost, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"title_zh^2", "title_en^2", "excerpt_zh", "excerpt_en", "body_zh", "body_en"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := n.ES.Search(
		n.ES.Search.WithContext(ctx),
		n.ES.Search.WithIndex(n.Index),
		n.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: query: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: query: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.NewsPost `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	posts := make([]models.NewsPost, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		posts[i] = hit.Source
	}
	return r.Hits.Total.Value, posts, nil
}
