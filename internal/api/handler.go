package api

import (
	"github.com/PFAdminGH/ArenaVerse/internal/storage"
)

// ArenaHandler groups all arena-related HTTP handlers.
type ArenaHandler struct {
	repo storage.Repository
}

// NewArenaHandler creates a new ArenaHandler with the given repository.
func NewArenaHandler(repo storage.Repository) *ArenaHandler {
	return &ArenaHandler{repo: repo}
}
