package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: DefaultLogLevel}, cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAIRUP_TEST_DIR", "/data")

	path := writeConfig(t, "pairup.hcl", `
input     = "${env.PAIRUP_TEST_DIR}/input.txt"
part      = 2
log_level = "debug"
verbose   = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:    "/data/input.txt",
		Part:     PartSimilarity,
		LogLevel: "debug",
		Verbose:  true,
	}, cfg)
}

func TestLoad_FileDefaultsObject(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pairup.hcl", `
part      = defaults.part
log_level = defaults.log_level
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PartBoth, cfg.Part)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_JSONFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pairup.json", `{"part": 1, "trace": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PartDifference, cfg.Part)
	assert.True(t, cfg.Trace)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pairup.hcl", `
part      = 2
log_level = "debug"
`)
	t.Setenv("PAIRUP_PART", "1")
	t.Setenv("PAIRUP_LOG_LEVEL", "error")
	t.Setenv("PAIRUP_INPUT", "/tmp/other.txt")
	t.Setenv("PAIRUP_TRACE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PartDifference, cfg.Part)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/tmp/other.txt", cfg.Input)
	assert.True(t, cfg.Trace)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		content string
		wantErr string
	}{
		{name: "invalid part env", env: map[string]string{"PAIRUP_PART": "x"}, wantErr: "invalid PAIRUP_PART"},
		{name: "invalid bool", env: map[string]string{"PAIRUP_VERBOSE": "maybe"}, wantErr: "invalid PAIRUP_VERBOSE"},
		{name: "unknown attribute", file: "pairup.hcl", content: `colour = "red"`, wantErr: "config: decode"},
		{name: "wrong type", file: "pairup.hcl", content: `part = "two"`, wantErr: "config: decode"},
		{name: "unknown variable", file: "pairup.hcl", content: `input = nope.path`, wantErr: "config: decode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.file != "" {
				path = writeConfig(t, tc.file, tc.content)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAIRUP_PART", "3")
	t.Setenv("PAIRUP_LOG_LEVEL", "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Part)
	assert.Equal(t, "loud", cfg.LogLevel)
	assert.Error(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Config{LogLevel: DefaultLogLevel}},
		{name: "part two warning", cfg: Config{Part: PartSimilarity, LogLevel: "WARNING"}},
		{name: "part out of range", cfg: Config{Part: 3, LogLevel: "info"}, wantErr: "invalid part 3"},
		{name: "negative part", cfg: Config{Part: -1, LogLevel: "info"}, wantErr: "invalid part -1"},
		{name: "invalid log level", cfg: Config{LogLevel: "loud"}, wantErr: "invalid log level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAIRUP_INPUT", "PAIRUP_PART", "PAIRUP_LOG_LEVEL", "PAIRUP_VERBOSE", "PAIRUP_TRACE",
	} {
		// t.Setenv restores the original value on cleanup; unsetting afterwards
		// ensures the key is absent during the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
