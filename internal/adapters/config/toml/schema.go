package toml

import (
	"fmt"
	"time"

	"github.com/bnema/zksh/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version        int    `toml:"version"`
	Hosts          string `toml:"hosts"`
	SessionTimeout int    `toml:"session_timeout"`
	LogLevel       string `toml:"log_level"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings domain.Settings) fileSchema {
	return fileSchema{
		Version:        currentSchemaVersion,
		Hosts:          settings.Hosts,
		SessionTimeout: int(settings.SessionTimeout / time.Second),
		LogLevel:       settings.LogLevel,
	}
}
