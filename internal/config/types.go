package config

// Config holds all configuration for the application.
type Config struct {
	DBName             string
	Port               string
	LogLevel           string
	CORSAllowedOrigins []string
	Turso              TursoConfig
}

// TursoConfig selects a remote libSQL database. An empty PrimaryURL means the
// local SQLite file named by DBName is used.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
