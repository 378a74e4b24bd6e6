package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zksh/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDir       = ".zksh"
	configFile      = "config.toml"
	configType      = "toml"
	envPrefix       = "ZKSH"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	KeyVersion        = "version"
	KeyHosts          = "hosts"
	KeySessionTimeout = "session_timeout"
	KeyLogLevel       = "log_level"
)

var ErrConfigExists = errors.New("config file already exists")

// Store reads settings through viper, so flags bound on cfg and ZKSH_*
// variables override the file, and writes the file with go-toml.
type Store struct {
	cfg  *viper.Viper
	path string
}

// NewStore uses $HOME/.zksh/config.toml when path is empty.
func NewStore(cfg *viper.Viper, path string) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDir, configFile)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	defaults := domain.DefaultSettings()
	cfg.SetConfigFile(absPath)
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(KeyVersion, currentSchemaVersion)
	cfg.SetDefault(KeyHosts, defaults.Hosts)
	cfg.SetDefault(KeySessionTimeout, int(defaults.SessionTimeout/time.Second))
	cfg.SetDefault(KeyLogLevel, defaults.LogLevel)

	return &Store{cfg: cfg, path: filepath.Clean(absPath)}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the effective settings. A missing file is not an error.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	if err := s.cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, os.ErrNotExist) {
			return domain.Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	file := fileSchema{
		Version:        s.cfg.GetInt(KeyVersion),
		Hosts:          s.cfg.GetString(KeyHosts),
		SessionTimeout: s.cfg.GetInt(KeySessionTimeout),
		LogLevel:       s.cfg.GetString(KeyLogLevel),
	}
	if err := file.validateVersion(); err != nil {
		return domain.Settings{}, err
	}
	if file.SessionTimeout <= 0 {
		return domain.Settings{}, fmt.Errorf("session_timeout must be positive, got %d", file.SessionTimeout)
	}

	return domain.Settings{
		Hosts:          strings.TrimSpace(file.Hosts),
		SessionTimeout: time.Duration(file.SessionTimeout) * time.Second,
		LogLevel:       file.LogLevel,
	}, nil
}

// Save writes settings, refusing to replace an existing file unless force.
func (s *Store) Save(ctx context.Context, settings domain.Settings, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, s.path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	return s.writeSchema(toSchema(settings))
}

// Encode renders settings the way Save writes them.
func Encode(settings domain.Settings) ([]byte, error) {
	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}
	return data, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.path, configFileMode); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}

	return nil
}
