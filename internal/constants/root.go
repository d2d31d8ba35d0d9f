package constants

import "time"

const (
	AppName            = "lifetrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/lifetrack/lifetrack.db"
	ConnectionEnvVar   = "LIFETRACK_DB_CONNECTION"
	Version            = "v0.3.0"

	// DateFormat is the calendar-day format used as the join key across every log (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Aggregation constants
	HygieneThreshold   = 80
	StreakCap          = 365
	CompletionSignals  = 3
	RecentEntriesLimit = 5

	// Settings defaults
	DefaultTimezone  = "Local"
	DefaultWeekStart = "sunday"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifetrack-"
	BackupFileSuffix = ".db"

	// Logging constants
	LogDirName    = "logs"
	LogFileName   = "lifetrack.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// PostgreSQL pool constants
	PostgresSchema = AppName
	MaxOpenConns   = 25
	ConnMaxLife    = 5 * time.Minute

	// ExportVersion is written to YAML snapshots and checked on import
	ExportVersion = 1
)
