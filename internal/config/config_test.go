package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/musixmatch-client/internal/constants"
)

// validConfig returns a config that passes validation.
func validConfig() *Config {
	return &Config{
		AuthToken:      "token",
		AppID:          DefaultAppID,
		APIBaseURL:     DefaultAPIBaseURL,
		LogLevel:       "info",
		MaxLogLength:   "64KiB",
		RequestTimeout: "30s",
		TrackCacheSize: 10,
		SubtitleFormat: "lrc",
	}
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
	assert.Equal(t, "web-desktop-app-v1.0", DefaultAppID)
	assert.Equal(t, "https://apic-desktop.musixmatch.com/ws/1.1/", DefaultAPIBaseURL)
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		expectedError  string
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
auth_token: "test_token"
log_level: "debug"
subtitle_format: "mxm"
track_cache_size: 5
embed_lyrics: true
`,
			expectError: false,
		},
		{
			name:           "non-existent file",
			configFilename: "non_existent.yaml",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid.yaml",
			configContent: `
invalid: yaml: content: [unclosed
`,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := filepath.Join(t.TempDir(), tt.configFilename)

			if tt.configContent != "" {
				err := os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions)
				require.NoError(t, err)
			}

			cfg, err := LoadConfig(configPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "test_token", cfg.AuthToken)
			assert.Equal(t, "debug", cfg.LogLevel)
			assert.Equal(t, "mxm", cfg.SubtitleFormat)
			assert.Equal(t, 5, cfg.TrackCacheSize)
			assert.True(t, cfg.EmbedLyrics)
			assert.Equal(t, DefaultAppID, cfg.AppID, "defaults fill missing keys")
			assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
			assert.Equal(t, configPath, cfg.ConfigFilename)
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		errorIs  error
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "empty auth token is allowed",
			mutate: func(c *Config) { c.AuthToken = "" },
		},
		{
			name:    "empty app id",
			mutate:  func(c *Config) { c.AppID = "  " },
			errorIs: ErrEmptyAppID,
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.APIBaseURL = "ws/1.1/" },
			errorIs: ErrInvalidAPIBaseURL,
		},
		{
			name:    "unsupported base url scheme",
			mutate:  func(c *Config) { c.APIBaseURL = "ftp://example.com/" },
			errorIs: ErrInvalidAPIBaseURL,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			errorIs: ErrUnknownLogLevel,
		},
		{
			name:     "invalid max log length",
			mutate:   func(c *Config) { c.MaxLogLength = "lots" },
			errorMsg: "failed to parse max log length",
		},
		{
			name:     "invalid request timeout",
			mutate:   func(c *Config) { c.RequestTimeout = "soon" },
			errorMsg: "failed to parse request timeout",
		},
		{
			name:    "negative request timeout",
			mutate:  func(c *Config) { c.RequestTimeout = "-1s" },
			errorIs: ErrInvalidRequestTimeout,
		},
		{
			name:    "negative cache size",
			mutate:  func(c *Config) { c.TrackCacheSize = -1 },
			errorIs: ErrInvalidTrackCacheSize,
		},
		{
			name:    "unknown subtitle format",
			mutate:  func(c *Config) { c.SubtitleFormat = "srt" },
			errorIs: ErrUnknownSubtitleFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			switch {
			case tt.errorIs != nil:
				require.ErrorIs(t, err, tt.errorIs)
			case tt.errorMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

// TestValidateConfig_DerivedFields tests the parsed fields set by ValidateConfig.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.APIBaseURL = "http://127.0.0.1:8080/ws/1.1"
	cfg.LogLevel = "DEBUG"
	cfg.SubtitleFormat = " MXM "

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, "http://127.0.0.1:8080/ws/1.1/", cfg.APIBaseURL)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, uint64(64*1024), cfg.ParsedMaxLogLength)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, "mxm", cfg.SubtitleFormat)
}

// TestValidateConfig_ZeroValues tests that zero values disable limits.
func TestValidateConfig_ZeroValues(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MaxLogLength = "0"
	cfg.RequestTimeout = "0"
	cfg.SubtitleFormat = ""

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, uint64(DefaultMaxLogLength), cfg.ParsedMaxLogLength)
	assert.Zero(t, cfg.ParsedRequestTimeout)
	assert.Equal(t, DefaultSubtitleFormat, cfg.SubtitleFormat)
}

// TestRequireAuthToken tests the RequireAuthToken function.
func TestRequireAuthToken(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, RequireAuthToken(&Config{AuthToken: " "}), ErrEmptyAuthToken)
	require.NoError(t, RequireAuthToken(&Config{AuthToken: "abc"}))
}

// TestSaveConfig_PreservesLayout tests that only auth_token changes in an existing file.
func TestSaveConfig_PreservesLayout(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	original := "# my settings\nlog_level: debug\nauth_token: old\nembed_lyrics: true\n"
	require.NoError(t, os.WriteFile(configPath, []byte(original), constants.DefaultFilePermissions))

	err := SaveConfig(&Config{AuthToken: "new-token", ConfigFilename: configPath})
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), "# my settings")
	assert.Contains(t, string(content), `auth_token: "new-token"`)
	assert.NotContains(t, string(content), "old")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "new-token", cfg.AuthToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.EmbedLyrics)
}

// TestSaveConfig_AppendsMissingKey tests that auth_token is appended when absent.
func TestSaveConfig_AppendsMissingKey(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: warn\n"), constants.DefaultFilePermissions))

	require.NoError(t, SaveConfig(&Config{AuthToken: "abc", ConfigFilename: configPath}))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.AuthToken)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestSaveConfig_CreatesFile tests that a missing file is created.
func TestSaveConfig_CreatesFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "fresh.yaml")

	require.NoError(t, SaveConfig(&Config{AuthToken: "fresh", ConfigFilename: configPath}))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, yaml.Unmarshal(content, &parsed))
	assert.Equal(t, "fresh", parsed["auth_token"])
}
