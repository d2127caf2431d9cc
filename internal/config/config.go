package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
	ErrDSNInvalid    = errors.New("DB_DSN uses an unsupported scheme")
	ErrGinMode       = errors.New("GIN_MODE must be one of debug, release, test")
	ErrLogFormat     = errors.New("LOG_FORMAT must be one of json, human")
)

// schemes supported in DB_DSN. A DSN without scheme is a path to an SQLite database.
var schemes = []string{"sqlite", "postgres", "postgresql", "mysql"}

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL      // Base URL the API is reachable at, used for links
	DBDSN            string        // Connection string for the database
	Port             string        // Port to listen on
	GinMode          string        // gin mode, one of "debug", "release", "test"
	LogFormat        string        // "json" or "human", empty to choose by GinMode
	CORSAllowOrigins []string      // Allowed origins for CORS, glob patterns are supported
	EnablePprof      bool          // Register pprof routes
	ShutdownTimeout  time.Duration // Time to wait for requests to finish on shutdown
}

// Load reads the configuration.
//
// Values are read from the environment, which is populated from a .env file
// if one exists. A frugal.yaml file in the working directory or in /etc/frugal
// is used for all keys that are not set in the environment.
func Load() (Config, error) {
	// A missing .env file is not an error
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("frugal")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/frugal")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("could not read configuration file: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded configuration file")
	}

	v.SetDefault("DB_DSN", "sqlite://data/frugal.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.AutomaticEnv()

	return parse(v)
}

func parse(v *viper.Viper) (Config, error) {
	rawURL := v.GetString("API_URL")
	if rawURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(rawURL)
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, fmt.Errorf("%w: %q", ErrAPIURLInvalid, rawURL)
	}

	// Links are built by appending paths to the base URL
	apiURL.Path = strings.TrimSuffix(apiURL.Path, "/")

	dsn := v.GetString("DB_DSN")
	if scheme, _, found := strings.Cut(dsn, "://"); found && !slices.Contains(schemes, scheme) {
		return Config{}, fmt.Errorf("%w: %s", ErrDSNInvalid, scheme)
	}

	ginMode := v.GetString("GIN_MODE")
	if !slices.Contains([]string{"debug", "release", "test"}, ginMode) {
		return Config{}, fmt.Errorf("%w, got %q", ErrGinMode, ginMode)
	}

	logFormat := v.GetString("LOG_FORMAT")
	if logFormat != "" && !slices.Contains([]string{"json", "human"}, logFormat) {
		return Config{}, fmt.Errorf("%w, got %q", ErrLogFormat, logFormat)
	}

	return Config{
		APIURL:           apiURL,
		DBDSN:            dsn,
		Port:             v.GetString("PORT"),
		GinMode:          ginMode,
		LogFormat:        logFormat,
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
	}, nil
}
