package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PFAdminGH/ArenaVerse/internal/constants"
)

// ListFighters returns the full roster with config-sourced stats and tallies.
func (h *ArenaHandler) ListFighters(c *gin.Context) {
	fighters, err := h.repo.GetFighters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchFighters})
		return
	}
	c.JSON(http.StatusOK, fighters)
}

// ListLeaderboard returns the top fighters by wins (desc), limited to top 10
// by default.
func (h *ArenaHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	fighters, err := h.repo.GetTopFighters(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, fighters)
}
