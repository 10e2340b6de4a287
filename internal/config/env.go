package config

// Environment variable constants
const (
	// EnvDataDir overrides the game data directory
	EnvDataDir = "FIELDGUIDE_DATA_DIR"

	// EnvLanguage selects the display language catalog
	EnvLanguage = "FIELDGUIDE_LANGUAGE"

	// EnvWatch enables reloading help data when the files change
	EnvWatch = "FIELDGUIDE_WATCH"

	// EnvDebug enables the debug log
	EnvDebug = "FIELDGUIDE_DEBUG"

	// EnvDebugLog points the debug log at an explicit file
	EnvDebugLog = "FIELDGUIDE_DEBUG_LOG"
)
