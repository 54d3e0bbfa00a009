package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
	"github.com/PFAdminGH/ArenaVerse/internal/service"
)

// RunSimulation resolves a reproducible batch of trials between two roster
// fighters and returns the aggregate summary. Nothing is persisted and no
// tallies move.
func (h *ArenaHandler) RunSimulation(c *gin.Context) {
	var body struct {
		FighterA string `json:"fighter_a"`
		FighterB string `json:"fighter_b"`
		Trials   int    `json:"trials"`
		SeedBase int64  `json:"seed_base"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.FighterA == "" || body.FighterB == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	sum, err := service.Simulate(c.Request.Context(), h.repo, body.FighterA, body.FighterB, body.Trials, body.SeedBase)
	switch {
	case errors.Is(err, service.ErrTrialsOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTrialsOutOfRange})
		return
	case errors.Is(err, service.ErrFighterNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFighterNotFound})
		return
	case err != nil:
		logging.Error("simulation failed", err, logging.Fields{
			constants.LogFieldFighterA: body.FighterA,
			constants.LogFieldFighterB: body.FighterB,
			constants.LogFieldTrials:   body.Trials,
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunSimulation})
		return
	}

	c.JSON(http.StatusOK, sum)
}
