package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/musixmatch-client/internal/constants"
	"github.com/oshokin/musixmatch-client/internal/logger"
	"github.com/oshokin/musixmatch-client/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// AuthToken is the Musixmatch user token sent with every API call.
	AuthToken string `mapstructure:"auth_token"`
	// AppID identifies the client application to the API.
	AppID string `mapstructure:"app_id"`
	// APIBaseURL is the root every API method path is appended to.
	APIBaseURL string `mapstructure:"api_base_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength caps the size of dumped HTTP traffic in debug logs (e.g. "1 MB", "64KiB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// RequestTimeout limits a single HTTP call; "0" waits forever.
	RequestTimeout string `mapstructure:"request_timeout"`
	// TrackCacheSize is the number of decoded tracks kept in memory; 0 disables the cache.
	TrackCacheSize int `mapstructure:"track_cache_size"`
	// SubtitleFormat is the default synced lyrics format (lrc, dfxp, stledu, mxm).
	SubtitleFormat string `mapstructure:"subtitle_format"`
	// OutputPath is the directory for saved lyrics; empty means next to the audio file.
	OutputPath string `mapstructure:"output_path"`
	// ReplaceLyrics indicates whether existing lyrics files are overwritten.
	ReplaceLyrics bool `mapstructure:"replace_lyrics"`
	// EmbedLyrics indicates whether lyrics are written into audio file tags.
	EmbedLyrics bool `mapstructure:"embed_lyrics"`
	// DryRun previews lyrics work without touching files (flag only).
	DryRun bool `mapstructure:"-"`
	// ConfigFilename is the file the configuration was loaded from.
	ConfigFilename string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedMaxLogLength is the parsed debug dump limit in bytes.
	ParsedMaxLogLength uint64 `mapstructure:"-"`
	// ParsedRequestTimeout is the parsed HTTP timeout.
	ParsedRequestTimeout time.Duration `mapstructure:"-"`
}

const (
	// DefaultAPIBaseURL is the root of the desktop Musixmatch API.
	DefaultAPIBaseURL = "https://apic-desktop.musixmatch.com/ws/1.1/"

	// DefaultAppID is the application identifier of the desktop client.
	DefaultAppID = "web-desktop-app-v1.0"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".musixmatch-client.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) of dumped HTTP traffic.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultRequestTimeout is the default HTTP timeout.
	DefaultRequestTimeout = "60s"

	// DefaultTrackCacheSize is the default number of cached tracks.
	DefaultTrackCacheSize = 1000

	// DefaultSubtitleFormat is the default synced lyrics format.
	DefaultSubtitleFormat = "lrc"

	// envPrefix prefixes environment overrides, e.g. MUSIXMATCH_AUTH_TOKEN.
	envPrefix = "MUSIXMATCH"

	// authTokenKey is the YAML key of the user token.
	authTokenKey = "auth_token"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAuthToken indicates that the authentication token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty")
	// ErrEmptyAppID indicates that the application identifier is missing.
	ErrEmptyAppID = errors.New("app_id cannot be empty")
	// ErrInvalidAPIBaseURL indicates that api_base_url is not an absolute URL.
	ErrInvalidAPIBaseURL = errors.New("api_base_url must be an absolute http(s) URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is negative.
	ErrInvalidRequestTimeout = errors.New("request_timeout cannot be negative")
	// ErrInvalidTrackCacheSize indicates that the track cache size is negative.
	ErrInvalidTrackCacheSize = errors.New("track_cache_size cannot be negative")
	// ErrUnknownSubtitleFormat indicates that the subtitle format is not supported.
	ErrUnknownSubtitleFormat = errors.New("unknown subtitle format")
)

//nolint:gochecknoglobals // Immutable lookup table.
var subtitleFormats = map[string]struct{}{
	"lrc":    {},
	"dfxp":   {},
	"stledu": {},
	"mxm":    {},
}

// LoadConfig loads configuration settings from a YAML file.
// When no filename is given and the default file does not exist, defaults are used.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	isDefaultFile := configFilename == ""
	if isDefaultFile {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		exists, _ := utils.IsFileExist(configFilename)
		if !isDefaultFile || exists {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFilename = configFilename

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
// The auth token is checked separately by RequireAuthToken because token.get works without one.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)

	cfg.AppID = strings.TrimSpace(cfg.AppID)
	if cfg.AppID == "" {
		return ErrEmptyAppID
	}

	baseURL, err := url.Parse(strings.TrimSpace(cfg.APIBaseURL))
	if err != nil || baseURL.Host == "" || (baseURL.Scheme != "http" && baseURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidAPIBaseURL, cfg.APIBaseURL)
	}

	// Method paths are appended verbatim, so the root must end with a slash.
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	cfg.APIBaseURL = baseURL.String()

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	cfg.ParsedRequestTimeout = 0

	if requestTimeout := strings.TrimSpace(cfg.RequestTimeout); requestTimeout != "" && requestTimeout != "0" {
		cfg.ParsedRequestTimeout, err = time.ParseDuration(requestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if cfg.ParsedRequestTimeout < 0 {
			return ErrInvalidRequestTimeout
		}
	}

	if cfg.TrackCacheSize < 0 {
		return ErrInvalidTrackCacheSize
	}

	cfg.SubtitleFormat = strings.ToLower(strings.TrimSpace(cfg.SubtitleFormat))
	if cfg.SubtitleFormat == "" {
		cfg.SubtitleFormat = DefaultSubtitleFormat
	}

	if _, ok := subtitleFormats[cfg.SubtitleFormat]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownSubtitleFormat, cfg.SubtitleFormat)
	}

	return nil
}

// RequireAuthToken fails when no user token is configured.
func RequireAuthToken(cfg *Config) error {
	if strings.TrimSpace(cfg.AuthToken) == "" {
		return ErrEmptyAuthToken
	}

	return nil
}

// SaveConfig writes the auth token back to the configuration file
// while preserving the original format and order of the other keys.
func SaveConfig(cfg *Config) error {
	configFile := cfg.ConfigFilename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	originalContent, err := os.ReadFile(configFile) //nolint:gosec // The path comes from the user's own flag.
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		originalContent = nil
	}

	var node yaml.Node
	if len(originalContent) > 0 {
		if err = yaml.Unmarshal(originalContent, &node); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	setAuthTokenInNode(&node, cfg.AuthToken)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(authTokenKey, "")
	v.SetDefault("app_id", DefaultAppID)
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_log_length", humanize.IBytes(DefaultMaxLogLength))
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("track_cache_size", DefaultTrackCacheSize)
	v.SetDefault("subtitle_format", DefaultSubtitleFormat)
	v.SetDefault("output_path", "")
	v.SetDefault("replace_lyrics", false)
	v.SetDefault("embed_lyrics", false)
}

// setAuthTokenInNode updates or appends auth_token in the YAML node tree.
func setAuthTokenInNode(node *yaml.Node, authToken string) {
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != authTokenKey {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = authToken

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: authTokenKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: authToken, Style: yaml.DoubleQuotedStyle},
	)
}
