package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Ranger   RangerConfig
	Tracking TrackingConfig
	Report   ReportConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RangerConfig contains the upstream tracking server connection settings.
// Credentials are injected via environment variables only.
type RangerConfig struct {
	ServerURL string
	Username  string
	Password  string
	ClientID  string
	PageSize  int
	TimeoutS  int
}

// TrackingConfig contains tracking service specific configuration
type TrackingConfig struct {
	// Provider tag used to filter the fleet (e.g. one ear-tag manufacturer)
	DefaultProvider string
	// Window of observation history pulled on each refresh
	WindowDays int
	// How often the background fleet refresh runs, in minutes
	RefreshIntervalMin int
	// Expected observations per day per unit. Reporting cadence differs
	// between device models, so there is no safe built-in default; a unit is
	// only flagged as under-reporting when this is set (> 0).
	ExpectedFixesPerDay float64
	// Default radius for nearby-unit queries
	SearchRadiusKm float64
	// How long last-known locations are kept in Redis
	LocationTTLHours int
}

// ReportConfig contains fleet report delivery configuration
type ReportConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	From         string
	To           string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	LogsEndpoint string
	LogsAPIKey   string
	ForwardLogs  bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
