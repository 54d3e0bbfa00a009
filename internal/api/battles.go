package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
	"github.com/PFAdminGH/ArenaVerse/internal/service"
)

// CreateBattle resolves a battle between two roster fighters and persists the
// result. A missing seed gets a wall-clock one; the response echoes whichever
// seed was used so any battle can be replayed later.
func (h *ArenaHandler) CreateBattle(c *gin.Context) {
	var body struct {
		FighterA string `json:"fighter_a"`
		FighterB string `json:"fighter_b"`
		Seed     *int64 `json:"seed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.FighterA == "" || body.FighterB == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	seed := time.Now().UnixNano()
	if body.Seed != nil {
		seed = *body.Seed
	}

	rec, res, err := service.RunAndRecord(h.repo, body.FighterA, body.FighterB, seed)
	switch {
	case errors.Is(err, service.ErrFighterNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFighterNotFound})
		return
	case errors.Is(err, service.ErrSameFighter):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameFighterTwice})
		return
	case err != nil:
		logging.Error("battle failed", err, logging.Fields{
			constants.LogFieldFighterA: body.FighterA,
			constants.LogFieldFighterB: body.FighterB,
			constants.LogFieldSeed:     seed,
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunBattle})
		return
	}

	logging.Info("battle resolved", logging.Fields{
		constants.LogFieldBattleID: rec.ID,
		constants.LogFieldWinner:   rec.Winner,
		constants.LogFieldRounds:   rec.Rounds,
		constants.LogFieldSeed:     rec.Seed,
	})
	c.JSON(http.StatusCreated, gin.H{
		"battle_id": rec.ID,
		"fighter_a": rec.FighterA,
		"fighter_b": rec.FighterB,
		"seed":      rec.Seed,
		"winner":    rec.Winner,
		"draw":      rec.IsDraw(),
		"rounds":    rec.Rounds,
		"final_hp":  res.Final,
		"log":       res.Log,
	})
}

// GetBattle returns a persisted battle, including its replayable log.
func (h *ArenaHandler) GetBattle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("battleID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	rec, err := h.repo.GetBattleByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"battle_id": rec.ID,
		"fighter_a": rec.FighterA,
		"fighter_b": rec.FighterB,
		"seed":      rec.Seed,
		"winner":    rec.Winner,
		"draw":      rec.IsDraw(),
		"rounds":    rec.Rounds,
		"log":       json.RawMessage(rec.LogJSON),
	})
}

// ListBattles returns the most recent battles, newest first.
func (h *ArenaHandler) ListBattles(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	recs, err := h.repo.GetRecentBattles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	out := make([]gin.H, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		out = append(out, gin.H{
			"battle_id":  rec.ID,
			"fighter_a":  rec.FighterA,
			"fighter_b":  rec.FighterB,
			"seed":       rec.Seed,
			"winner":     rec.Winner,
			"draw":       rec.IsDraw(),
			"rounds":     rec.Rounds,
			"created_at": rec.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
