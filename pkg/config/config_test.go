package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/policy"
)

const (
	testProgramID = "J7A8AeFaPNxe3w7jCxnE2xHVWZz2GgjAF9LWky5AG2Jq"
	testAuthority = "0x0101010101010101010101010101010101010101010101010101010101010101"
)

func testIdentifier(t *testing.T, s string) codec.Identifier {
	t.Helper()
	id, err := codec.ParseIdentifier(s)
	require.NoError(t, err)
	return id
}

var configFiles = map[string]string{
	"config.json": `{
  "system": {"dataPath": "/tmp/breeding", "logLevel": "debug"},
  "program": {"programID": "J7A8AeFaPNxe3w7jCxnE2xHVWZz2GgjAF9LWky5AG2Jq", "authority": "0x0101010101010101010101010101010101010101010101010101010101010101"},
  "rent": {"lamportsPerByteYear": 10},
  "breeding": {"cooldownSeconds": 0, "maxBreedCount": 5}
}`,
	"config.yaml": `system:
  dataPath: /tmp/breeding
  logLevel: debug
program:
  programID: J7A8AeFaPNxe3w7jCxnE2xHVWZz2GgjAF9LWky5AG2Jq
  authority: "0x0101010101010101010101010101010101010101010101010101010101010101"
rent:
  lamportsPerByteYear: 10
breeding:
  cooldownSeconds: 0
  maxBreedCount: 5
`,
	"config.toml": `[system]
dataPath = "/tmp/breeding"
logLevel = "debug"

[program]
programID = "J7A8AeFaPNxe3w7jCxnE2xHVWZz2GgjAF9LWky5AG2Jq"
authority = "0x0101010101010101010101010101010101010101010101010101010101010101"

[rent]
lamportsPerByteYear = 10

[breeding]
cooldownSeconds = 0
maxBreedCount = 5
`,
}

func writeConfig(t *testing.T, name, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	return filePath
}

func TestLoad(t *testing.T) {
	for name, content := range configFiles {
		t.Run(name, func(t *testing.T) {
			config, err := Load(writeConfig(t, name, content))
			require.NoError(t, err)

			assert.Equal(t, "/tmp/breeding", config.System.DataPath)
			assert.Equal(t, "/tmp/breeding/accounts.db", config.System.DatabasePath())
			assert.Equal(t, "debug", config.System.LogLevel)
			assert.Equal(t, "0.1.0", config.System.Version)

			programID, err := config.Program.ProgramIdentifier()
			require.NoError(t, err)
			assert.Equal(t, testIdentifier(t, testProgramID), programID)
			authority, err := config.Program.AuthorityIdentifier()
			require.NoError(t, err)
			assert.Equal(t, testIdentifier(t, testAuthority), authority)

			assert.Equal(t, policy.Rent{LamportsPerByteYear: 10, ExemptionThreshold: policy.DefaultExemptionThreshold}, config.Rent.Rent())
			assert.Equal(t, uint64(0), config.Breeding.GetCooldownSeconds())
			assert.Equal(t, uint64(5), config.Breeding.MaxBreedCount)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "config.ini", "x=1"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "config.json", "{"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "config.yaml", "unknown: 1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "config.json", `{"program": {"programID": "abc"}}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Load(writeConfig(t, "config.json", `{"program": {"programID": "0x`+strings.Repeat("00", 32)+`"}}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	config, err := Load(writeConfig(t, "config.json", `{"program": {"programID": "`+testProgramID+`"}}`))
	require.NoError(t, err)
	authority, err := config.Program.AuthorityIdentifier()
	require.NoError(t, err)
	assert.Equal(t, testIdentifier(t, DefaultAuthority), authority)

	_, err = Load(writeConfig(t, "config.json", `{"system": {"logLevel": "loud"}, "program": {"programID": "`+testProgramID+`", "authority": "`+testProgramID+`"}}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestInsertDefault(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.InsertDefault())
	assert.Equal(t, "info", config.System.LogLevel)
	assert.Equal(t, DefaultAuthority, config.Program.Authority)
	assert.NotEmpty(t, config.System.DataPath)
	assert.Equal(t, policy.DefaultRent(), config.Rent.Rent())
	assert.Equal(t, defaultCooldownSeconds, config.Breeding.GetCooldownSeconds())
	assert.Equal(t, uint64(0), config.Breeding.MaxBreedCount)
}

func TestMerge(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.InsertDefault())

	config.Merge(&Config{
		System:   &SystemConfig{DataPath: "/data", LogFile: "/data/log"},
		Program:  &ProgramConfig{ProgramID: testProgramID},
		Rent:     &RentConfig{ExemptionThreshold: 3},
		Breeding: &BreedingConfig{CooldownSeconds: uint64Ptr(10)},
	})
	config.Merge(nil)

	assert.Equal(t, "/data", config.System.DataPath)
	assert.Equal(t, "info", config.System.LogLevel)
	assert.Equal(t, "/data/log", config.System.LoggerConfig().File)
	assert.Equal(t, testProgramID, config.Program.ProgramID)
	assert.Equal(t, uint64(3), config.Rent.ExemptionThreshold)
	assert.Equal(t, uint64(policy.DefaultLamportsPerByteYear), config.Rent.LamportsPerByteYear)
	assert.Equal(t, uint64(10), config.Breeding.GetCooldownSeconds())
}
