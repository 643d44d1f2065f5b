package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Backup
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string // debug, release or test
		// Origins allowed to call /api; empty disables CORS
		CORSAllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}
	UI struct {
		TemplatesPath string // empty: use embedded templates
		StaticPath    string // empty: use embedded static files
		LangPath      string // empty: use embedded labels
	}
	Backup struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
		Dir      string
	}
)

func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("templates_path", "")
	v.SetDefault("static_path", "")
	v.SetDefault("lang_path", "")

	// Export backup defaults
	v.SetDefault("export_backup_enabled", false)
	v.SetDefault("export_backup_schedule", DefaultBackupSchedule)
	v.SetDefault("export_backup_dir", DefaultBackupDir)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),

			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
			LangPath:      v.GetString("LANG_PATH"),
		},
		Backup: Backup{
			Enabled:  v.GetBool("EXPORT_BACKUP_ENABLED"),
			Schedule: v.GetString("EXPORT_BACKUP_SCHEDULE"),
			Dir:      v.GetString("EXPORT_BACKUP_DIR"),
		},
	}
}

// splitList parses a comma-separated env value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
