package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Skill match modes
const (
	// SkillMatchSingleRecord requires one skill record to satisfy every token.
	SkillMatchSingleRecord = "single-record"
	// SkillMatchPerToken lets each token be satisfied by a different skill record.
	SkillMatchPerToken = "per-token"
)

// Developer delete policies
const (
	DeletePolicyReject  = "reject"
	DeletePolicyCascade = "cascade"
)

type Config struct {
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBDSN            string
	DBPoolSize       int
	DBAcquireTimeout time.Duration

	DefaultPageSize       int
	SkillMatchMode        string
	DeveloperDeletePolicy string
	SeedCodes             bool

	GinMode            string
	ServerPort         string
	LogLevel           string
	CORSAllowedOrigins []string
}

func Load() *Config {
	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "mysql"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "corehp"),
		DBPassword:       getEnv("DB_PASSWORD", "corehp"),
		DBName:           getEnv("DB_NAME", "core_hp"),
		DBDSN:            getEnv("DB_DSN", ""),
		DBPoolSize:       getEnvInt("DB_POOL_SIZE", 10),
		DBAcquireTimeout: getEnvDuration("DB_ACQUIRE_TIMEOUT", 5*time.Second),

		DefaultPageSize:       getEnvInt("DEFAULT_PAGE_SIZE", 10),
		SkillMatchMode:        getEnvOneOf("SKILL_MATCH_MODE", SkillMatchSingleRecord, SkillMatchPerToken),
		DeveloperDeletePolicy: getEnvOneOf("DEVELOPER_DELETE_POLICY", DeletePolicyReject, DeletePolicyCascade),
		SeedCodes:             getEnvBool("SEED_CODES", true),

		GinMode:            getEnv("GIN_MODE", "debug"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// getEnvOneOf returns the value of key when it is one of allowed, otherwise allowed[0].
func getEnvOneOf(key string, allowed ...string) string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for _, a := range allowed {
		if value == a {
			return a
		}
	}
	return allowed[0]
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
