package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	EnvServer   = "CODESEARCH_SERVER"
	EnvTimeout  = "CODESEARCH_TIMEOUT"
	EnvLogLevel = "CODESEARCH_LOG_LEVEL"
	EnvLogFile  = "CODESEARCH_LOG_FILE"
)

// ApplyEnv overlays environment variables onto c. environ has the
// os.Environ() shape so tests can pass their own.
func (c *Config) ApplyEnv(environ []string) error {
	env := parseEnv(environ)

	if v := strings.TrimSpace(env[EnvServer]); v != "" {
		c.Server.BaseURL = v
	}
	if v := strings.TrimSpace(env[EnvTimeout]); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Server.Timeout = Duration{d}
	}
	if v := strings.TrimSpace(env[EnvLogLevel]); v != "" {
		c.Logging.Level = &v
	}
	if v := strings.TrimSpace(env[EnvLogFile]); v != "" {
		c.Logging.File = &v
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}
