// Package repo holds the narrow per-entity storage helpers. Every helper
// wraps one or a few gorm queries and tags missing rows with ErrNotFound
// so the route layer can map statuses deterministically.
package repo

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// wrapNotFound translates gorm's sentinel so callers never import gorm.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
