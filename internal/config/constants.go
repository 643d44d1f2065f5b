package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./books.db"

	// DefaultBackupDir is where scheduled exports are written
	DefaultBackupDir = "./backups"

	// DefaultBackupSchedule runs the export backup daily at 03:00
	DefaultBackupSchedule = "0 3 * * *"
)
