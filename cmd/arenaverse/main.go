package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/PFAdminGH/ArenaVerse/internal/api"
	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
)

func main() {
	// Path may be provided via ARENA_CONFIG or defaults to
	// ./arena_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvArenaConfig)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via ARENA_DB.
	dbPath := os.Getenv(constants.EnvArenaDB)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg.Fighters)
	handler := api.NewArenaHandler(repo)

	router := gin.Default()
	router.GET(constants.RouteHealthz, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteFighters, handler.ListFighters)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.POST(constants.RouteBattles, handler.CreateBattle)
		apiRoutes.GET(constants.RouteBattles, handler.ListBattles)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
		apiRoutes.POST(constants.RouteSimulations, handler.RunSimulation)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	// Start server on configured address; ARENA_ADDR overrides the config.
	addr := cfg.ServerAddress
	if env := os.Getenv(constants.EnvArenaAddr); env != "" {
		addr = env
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
