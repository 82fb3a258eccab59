package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	CacheEnabled               bool
	CacheTTL                   time.Duration
	ScoreboardMaxWorkers       int
	MarqueeTeams               []string
	MarqueeMatchups            [][2]string
	PprofEnabled               bool
	PprofAddr                  string
	ESPNBaseURL                string
	ESPNTimeout                time.Duration
	ESPNMaxRetries             int
	ESPNCircuitEnabled         bool
	ESPNCircuitFailureCount    int
	ESPNCircuitOpenTimeout     time.Duration
	ESPNCircuitHalfOpenMaxReq  int
	NarrativeEnabled           bool
	NarrativeBaseURL           string
	NarrativeAPIKey            string
	NarrativeModel             string
	NarrativeTimeout           time.Duration
	NarrativeCircuitEnabled    bool
	NarrativeCircuitFailures   int
	NarrativeCircuitOpenTime   time.Duration
	NarrativeCircuitHalfOpen   int
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

// Marquee assembles the marquee matchup configuration. Empty overrides fall
// back to the editorial defaults.
func (c Config) Marquee() game.MarqueeConfig {
	if len(c.MarqueeTeams) == 0 && len(c.MarqueeMatchups) == 0 {
		return game.DefaultMarqueeConfig()
	}
	return game.MarqueeConfig{
		Teams:    c.MarqueeTeams,
		Matchups: c.MarqueeMatchups,
	}
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}
	espnMaxRetries, err := getEnvAsInt("ESPN_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_RETRIES: %w", err)
	}
	if espnMaxRetries < 0 {
		return Config{}, fmt.Errorf("ESPN_MAX_RETRIES must be >= 0")
	}
	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if espnCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if espnCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	narrativeEnabled, err := strconv.ParseBool(getEnv("NARRATIVE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_ENABLED: %w", err)
	}
	narrativeBaseURL := strings.TrimSpace(getEnv("NARRATIVE_BASE_URL", ""))
	narrativeAPIKey := strings.TrimSpace(getEnv("NARRATIVE_API_KEY", ""))
	if narrativeEnabled {
		if narrativeBaseURL == "" {
			return Config{}, fmt.Errorf("NARRATIVE_BASE_URL is required when NARRATIVE_ENABLED=true")
		}
		if narrativeAPIKey == "" {
			return Config{}, fmt.Errorf("NARRATIVE_API_KEY is required when NARRATIVE_ENABLED=true")
		}
	}
	narrativeTimeout, err := time.ParseDuration(getEnv("NARRATIVE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_TIMEOUT: %w", err)
	}
	if narrativeTimeout <= 0 {
		return Config{}, fmt.Errorf("NARRATIVE_TIMEOUT must be > 0")
	}
	narrativeCircuitEnabled, err := strconv.ParseBool(getEnv("NARRATIVE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_CIRCUIT_ENABLED: %w", err)
	}
	narrativeCircuitFailures, err := getEnvAsInt("NARRATIVE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if narrativeCircuitFailures < 1 {
		return Config{}, fmt.Errorf("NARRATIVE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	narrativeCircuitOpenTime, err := time.ParseDuration(getEnv("NARRATIVE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if narrativeCircuitOpenTime <= 0 {
		return Config{}, fmt.Errorf("NARRATIVE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	narrativeCircuitHalfOpen, err := getEnvAsInt("NARRATIVE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse NARRATIVE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if narrativeCircuitHalfOpen < 1 {
		return Config{}, fmt.Errorf("NARRATIVE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	scoreboardMaxWorkers, err := getEnvAsInt("SCOREBOARD_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOREBOARD_MAX_WORKERS: %w", err)
	}
	if scoreboardMaxWorkers < 1 {
		return Config{}, fmt.Errorf("SCOREBOARD_MAX_WORKERS must be >= 1")
	}

	marqueeMatchups, err := parseMatchups(getEnv("MARQUEE_MATCHUPS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse MARQUEE_MATCHUPS: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "nba-stats-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		ScoreboardMaxWorkers:       scoreboardMaxWorkers,
		MarqueeTeams:               splitCSV(getEnv("MARQUEE_TEAMS", "")),
		MarqueeMatchups:            marqueeMatchups,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		ESPNBaseURL:                strings.TrimSpace(getEnv("ESPN_BASE_URL", "")),
		ESPNTimeout:                espnTimeout,
		ESPNMaxRetries:             espnMaxRetries,
		ESPNCircuitEnabled:         espnCircuitEnabled,
		ESPNCircuitFailureCount:    espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:     espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq:  espnCircuitHalfOpenMaxReq,
		NarrativeEnabled:           narrativeEnabled,
		NarrativeBaseURL:           narrativeBaseURL,
		NarrativeAPIKey:            narrativeAPIKey,
		NarrativeModel:             strings.TrimSpace(getEnv("NARRATIVE_MODEL", "")),
		NarrativeTimeout:           narrativeTimeout,
		NarrativeCircuitEnabled:    narrativeCircuitEnabled,
		NarrativeCircuitFailures:   narrativeCircuitFailures,
		NarrativeCircuitOpenTime:   narrativeCircuitOpenTime,
		NarrativeCircuitHalfOpen:   narrativeCircuitHalfOpen,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseMatchups reads a comma-separated list of ABBR-ABBR pairs, e.g.
// "LAL-BOS,NYK-BKN".
func parseMatchups(raw string) ([][2]string, error) {
	items := splitCSV(raw)
	if len(items) == 0 {
		return nil, nil
	}

	out := make([][2]string, 0, len(items))
	for _, item := range items {
		segments := strings.SplitN(item, "-", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid matchup %q, expected ABBR-ABBR", item)
		}
		first := strings.TrimSpace(segments[0])
		second := strings.TrimSpace(segments[1])
		if first == "" || second == "" {
			return nil, fmt.Errorf("invalid matchup %q, expected ABBR-ABBR", item)
		}
		out = append(out, [2]string{first, second})
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
