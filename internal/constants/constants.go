package constants

// Centralized constants for env keys, routes and response shapes.
const (
	// Environment variable keys
	EnvArenaConfig = "ARENA_CONFIG"
	EnvArenaDB     = "ARENA_DB"
	EnvArenaAddr   = "ARENA_ADDR"

	// Defaults used when the corresponding env/config value is absent
	DefaultConfigPath = "arena_config.json"
	DefaultDBPath     = "arena.db"
	DefaultAddress    = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteFighters    = "/fighters"
	RouteBattles     = "/battles"
	RouteBattleByID  = "/battles/:battleID"
	RouteLeaderboard = "/leaderboard"
	RouteSimulations = "/simulations"
	RouteVersion     = "/version"
	RouteHealthz     = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBattleID        = "Invalid battle ID"
	ErrBattleNotFound         = "Battle not found"
	ErrFighterNotFound        = "Fighter not found"
	ErrSameFighterTwice       = "A fighter cannot battle itself"
	ErrFailedFetchFighters    = "Failed to fetch fighters"
	ErrFailedFetchBattles     = "Failed to fetch battles"
	ErrFailedFetchBattle      = "Failed to fetch battle"
	ErrFailedRunBattle        = "Failed to run battle"
	ErrFailedRunSimulation    = "Failed to run simulation"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrTrialsOutOfRange       = "Trials must be between 1 and 10000"
)

// Logging field names
const (
	LogFieldFighterA = "fighter_a"
	LogFieldFighterB = "fighter_b"
	LogFieldSeed     = "seed"
	LogFieldWinner   = "winner"
	LogFieldRounds   = "rounds"
	LogFieldTrials   = "trials"
	LogFieldBattleID = "battle_id"
	LogFieldAddr     = "addr"
	LogFieldName     = "name"
)

// Simulation limits
const (
	MaxSimulationTrials = 10000
)
