// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// StoreKind selects the review store backing.
type StoreKind string

const (
	// StoreMemory keeps reviews in a mutex-guarded slice.
	StoreMemory StoreKind = "memory"
	// StoreSQLite keeps reviews in an in-memory SQLite database.
	StoreSQLite StoreKind = "sqlite"
)

const defaultAvatarURL = "https://xsgames.co/randomusers/assets/avatars/female/0.jpg"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	LogLevel       slog.Level
	Store          StoreKind
	Seed           bool
	AllowedOrigins []string
	DefaultAvatar  string
}

// Load reads configuration from environment variables and returns a validated Config.
// Variables from a dotenv file (TAJMAHAL_ENV_FILE, default ".env") are loaded first
// without overriding variables already set; a missing file is not an error.
// Optional variables with defaults: TAJMAHAL_LISTEN_ADDR (127.0.0.1:8080),
// TAJMAHAL_LOG_LEVEL (info), TAJMAHAL_STORE (memory), TAJMAHAL_SEED (true),
// TAJMAHAL_ALLOWED_ORIGINS (http://localhost:5173), TAJMAHAL_DEFAULT_AVATAR.
func Load() (*Config, error) {
	envFile := ".env"
	if v, ok := os.LookupEnv("TAJMAHAL_ENV_FILE"); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %q: %w", envFile, err)
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("TAJMAHAL_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("TAJMAHAL_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("TAJMAHAL_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	store := StoreMemory
	if v, ok := os.LookupEnv("TAJMAHAL_STORE"); ok && v != "" {
		switch kind := StoreKind(strings.ToLower(strings.TrimSpace(v))); kind {
		case StoreMemory, StoreSQLite:
			store = kind
		default:
			return nil, fmt.Errorf("TAJMAHAL_STORE must be %q or %q, got %q", StoreMemory, StoreSQLite, v)
		}
	}

	seed := true
	if v, ok := os.LookupEnv("TAJMAHAL_SEED"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TAJMAHAL_SEED has invalid boolean %q: %w", v, err)
		}
		seed = parsed
	}

	var origins []string
	if v, ok := os.LookupEnv("TAJMAHAL_ALLOWED_ORIGINS"); ok {
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	} else {
		origins = []string{"http://localhost:5173"}
	}
	if origins == nil {
		origins = []string{}
	}

	avatar := defaultAvatarURL
	if v, ok := os.LookupEnv("TAJMAHAL_DEFAULT_AVATAR"); ok && v != "" {
		avatar = v
	}

	return &Config{
		ListenAddr:     listenAddr,
		LogLevel:       logLevel,
		Store:          store,
		Seed:           seed,
		AllowedOrigins: origins,
		DefaultAvatar:  avatar,
	}, nil
}
