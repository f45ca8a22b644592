// Package config provides config structure for the breeding program tools.
package config

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/log"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/policy"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")

	defaultCooldownSeconds uint64 = 60 * 60
	// DefaultAuthority is the key allowed to update the platform when none is configured.
	DefaultAuthority = "J7A8AeFaPNxe3w7jCxnE2xHVWZz2GgjAF9LWky5AG2Jq"
)

type Config struct {
	System   *SystemConfig   `json:"system" yaml:"system" toml:"system"`
	Program  *ProgramConfig  `json:"program" yaml:"program" toml:"program"`
	Rent     *RentConfig     `json:"rent" yaml:"rent" toml:"rent"`
	Breeding *BreedingConfig `json:"breeding" yaml:"breeding" toml:"breeding"`
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

// Load reads the config file and fills the defaults. The format is chosen by extension.
func Load(filePath string) (*Config, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", filePath)
	}
	config := &Config{}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		err = json.Unmarshal(content, config)
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(content, config)
	case ".toml":
		_, err = toml.Decode(string(content), config)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", filePath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", filePath)
	}
	if err := config.InsertDefault(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) InsertDefault() error {
	if c.System == nil {
		c.System = &SystemConfig{}
	}
	if err := c.System.InsertDefault(); err != nil {
		return err
	}
	if c.Program == nil {
		c.Program = &ProgramConfig{}
	}
	c.Program.InsertDefault()
	if c.Rent == nil {
		c.Rent = &RentConfig{}
	}
	c.Rent.InsertDefault()
	if c.Breeding == nil {
		c.Breeding = &BreedingConfig{}
	}
	c.Breeding.InsertDefault()
	return nil
}

// Merge overrides the values which are set in config.
func (c *Config) Merge(config *Config) {
	if config == nil {
		return
	}
	if config.System != nil {
		if c.System == nil {
			c.System = &SystemConfig{}
		}
		c.System.Merge(config.System)
	}
	if config.Program != nil {
		if c.Program == nil {
			c.Program = &ProgramConfig{}
		}
		c.Program.Merge(config.Program)
	}
	if config.Rent != nil {
		if c.Rent == nil {
			c.Rent = &RentConfig{}
		}
		c.Rent.Merge(config.Rent)
	}
	if config.Breeding != nil {
		if c.Breeding == nil {
			c.Breeding = &BreedingConfig{}
		}
		c.Breeding.Merge(config.Breeding)
	}
}

func (c *Config) Validate() error {
	if err := c.System.Validate(); err != nil {
		return err
	}
	return c.Program.Validate()
}

type SystemConfig struct {
	Version  string `json:"version" yaml:"version" toml:"version"`
	DataPath string `json:"dataPath" yaml:"dataPath" toml:"dataPath"`
	LogLevel string `json:"logLevel" yaml:"logLevel" toml:"logLevel"`
	LogFile  string `json:"logFile" yaml:"logFile" toml:"logFile"`
	LogJSON  bool   `json:"logJSON" yaml:"logJSON" toml:"logJSON"`
}

func (c *SystemConfig) InsertDefault() error {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.DataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.DataPath = path.Join(home, ".lisk", "nft-breeding")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

func (c *SystemConfig) Merge(config *SystemConfig) {
	if config.Version != "" {
		c.Version = config.Version
	}
	if config.DataPath != "" {
		c.DataPath = config.DataPath
	}
	if config.LogLevel != "" {
		c.LogLevel = config.LogLevel
	}
	if config.LogFile != "" {
		c.LogFile = config.LogFile
	}
	if config.LogJSON {
		c.LogJSON = true
	}
}

func (c *SystemConfig) Validate() error {
	if !slices.Contains(log.Levels, c.LogLevel) {
		return errors.Wrapf(ErrInvalidConfig, "log level %q must be one of %v", c.LogLevel, log.Levels)
	}
	return nil
}

// DatabasePath returns the directory of the account database.
func (c *SystemConfig) DatabasePath() string {
	return path.Join(c.DataPath, "accounts.db")
}

// LoggerConfig converts the system settings into a log.Config.
func (c *SystemConfig) LoggerConfig() log.Config {
	return log.Config{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
		JSON:       c.LogJSON,
	}
}

// ProgramConfig holds identifiers in base58, or hex prefixed with 0x.
type ProgramConfig struct {
	ProgramID string `json:"programID" yaml:"programID" toml:"programID"`
	Authority string `json:"authority" yaml:"authority" toml:"authority"`
}

func (c *ProgramConfig) InsertDefault() {
	if c.Authority == "" {
		c.Authority = DefaultAuthority
	}
}

func (c *ProgramConfig) Merge(config *ProgramConfig) {
	if config.ProgramID != "" {
		c.ProgramID = config.ProgramID
	}
	if config.Authority != "" {
		c.Authority = config.Authority
	}
}

func (c *ProgramConfig) Validate() error {
	programID, err := c.ProgramIdentifier()
	if err != nil {
		return err
	}
	if programID.IsEmpty() {
		return errors.Wrap(ErrInvalidConfig, "programID cannot be empty")
	}
	_, err = c.AuthorityIdentifier()
	return err
}

func (c *ProgramConfig) ProgramIdentifier() (codec.Identifier, error) {
	id, err := codec.ParseIdentifier(c.ProgramID)
	if err != nil {
		return id, errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "programID %q", c.ProgramID)
	}
	return id, nil
}

func (c *ProgramConfig) AuthorityIdentifier() (codec.Identifier, error) {
	id, err := codec.ParseIdentifier(c.Authority)
	if err != nil {
		return id, errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "authority %q", c.Authority)
	}
	return id, nil
}

type RentConfig struct {
	LamportsPerByteYear uint64 `json:"lamportsPerByteYear" yaml:"lamportsPerByteYear" toml:"lamportsPerByteYear"`
	ExemptionThreshold  uint64 `json:"exemptionThreshold" yaml:"exemptionThreshold" toml:"exemptionThreshold"`
}

func (c *RentConfig) InsertDefault() {
	if c.LamportsPerByteYear == 0 {
		c.LamportsPerByteYear = policy.DefaultLamportsPerByteYear
	}
	if c.ExemptionThreshold == 0 {
		c.ExemptionThreshold = policy.DefaultExemptionThreshold
	}
}

func (c *RentConfig) Merge(config *RentConfig) {
	if config.LamportsPerByteYear != 0 {
		c.LamportsPerByteYear = config.LamportsPerByteYear
	}
	if config.ExemptionThreshold != 0 {
		c.ExemptionThreshold = config.ExemptionThreshold
	}
}

func (c *RentConfig) Rent() policy.Rent {
	return policy.Rent{
		LamportsPerByteYear: c.LamportsPerByteYear,
		ExemptionThreshold:  c.ExemptionThreshold,
	}
}

// BreedingConfig limits how often a parent can breed. MaxBreedCount 0 means unlimited.
type BreedingConfig struct {
	CooldownSeconds *uint64 `json:"cooldownSeconds" yaml:"cooldownSeconds" toml:"cooldownSeconds"`
	MaxBreedCount   uint64  `json:"maxBreedCount" yaml:"maxBreedCount" toml:"maxBreedCount"`
}

func (c *BreedingConfig) InsertDefault() {
	if c.CooldownSeconds == nil {
		c.CooldownSeconds = uint64Ptr(defaultCooldownSeconds)
	}
}

func (c *BreedingConfig) Merge(config *BreedingConfig) {
	if config.CooldownSeconds != nil {
		c.CooldownSeconds = uint64Ptr(*config.CooldownSeconds)
	}
	if config.MaxBreedCount != 0 {
		c.MaxBreedCount = config.MaxBreedCount
	}
}

func (c BreedingConfig) GetCooldownSeconds() uint64 {
	if c.CooldownSeconds != nil {
		return *c.CooldownSeconds
	}
	return defaultCooldownSeconds
}
