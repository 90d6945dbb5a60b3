package env

import (
	"casino_console/internal/config"
	"fmt"
	"os"
	"strconv"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logFileEnvName  = "LOG_FILE"
	logDirEnvName   = "LOG_DIR"

	defaultLogLevel = "warn"
	defaultLogDir   = "./logs"
)

type logConfig struct {
	level string
	dir   string
	file  bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}

	dir := os.Getenv(logDirEnvName)
	if len(dir) == 0 {
		dir = defaultLogDir
	}

	var file bool
	if raw := os.Getenv(logFileEnvName); len(raw) != 0 {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", logFileEnvName, raw, err)
		}
		file = parsed
	}

	return &logConfig{
		level: level,
		dir:   dir,
		file:  file,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Dir() string {
	return cfg.dir
}

func (cfg *logConfig) File() bool {
	return cfg.file
}
