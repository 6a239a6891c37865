package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every pagelist environment variable.
const EnvPrefix = "PAGELIST_"

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

// LoadEnviron returns the process environment as a map, filled in with any
// values from dotEnvPath that the process environment does not set.
// A missing dotenv file is not an error.
func LoadEnviron(dotEnvPath string) (map[string]string, error) {
	environ := make(map[string]string)

	if dotEnvPath != "" {
		fileVars, err := godotenv.Read(dotEnvPath)
		switch {
		case err == nil:
			for k, v := range fileVars {
				environ[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", dotEnvPath, err)
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			environ[k] = v
		}
	}
	return environ, nil
}

// ApplyEnv overlays PAGELIST_* values from environ onto cfg.
// Unset or empty variables leave the existing value in place.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	if cfg == nil {
		return errors.New("nil config in ApplyEnv")
	}
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}
