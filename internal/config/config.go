// Package config loads chatstat settings from defaults, an optional
// chatstat.yaml, CHATSTAT_* environment variables and bound command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iksnae/chatstat/internal"
	"github.com/spf13/viper"
)

// ErrConfiguration wraps every loading and validation failure
var ErrConfiguration = errors.New("configuration error")

// Analysis defaults are the internal package's own.
const (
	DefaultStopWordsPath    = "stopwords.txt"
	DefaultLogLevel         = "info"
	DefaultMediaPlaceholder = internal.DefaultMediaPlaceholder
	DefaultTopWords         = internal.DefaultTopWords
	DefaultTopSenders       = internal.DefaultTopSenders
	DefaultWordCloudWidth   = internal.DefaultWordCloudWidth
	DefaultWordCloudHeight  = internal.DefaultWordCloudHeight
	DefaultWordCloudMinFont = internal.DefaultWordCloudMinFont
	DefaultWordCloudMaxWord = internal.DefaultWordCloudMaxWords
	DefaultWordCloudBG      = internal.DefaultWordCloudBackground

	envPrefix  = "CHATSTAT"
	configName = "chatstat"
)

// WordCloudConfig configures the word-cloud canvas
type WordCloudConfig struct {
	Width       int    `mapstructure:"width"         validate:"min=1,max=10000"`
	Height      int    `mapstructure:"height"        validate:"min=1,max=10000"`
	MinFontSize int    `mapstructure:"min_font_size" validate:"min=1"`
	MaxWords    int    `mapstructure:"max_words"     validate:"min=1"`
	Background  string `mapstructure:"background"    validate:"required"`
}

// Config holds every setting chatstat reads
type Config struct {
	StopWordsPath    string          `mapstructure:"stopwords_path"    validate:"required"`
	LogLevel         string          `mapstructure:"log_level"         validate:"oneof=debug info warn error"`
	DayFirst         bool            `mapstructure:"day_first"`
	DefaultYear      int             `mapstructure:"default_year"      validate:"min=1970,max=9999"`
	MediaPlaceholder string          `mapstructure:"media_placeholder" validate:"required"`
	TopWords         int             `mapstructure:"top_words"         validate:"min=1,max=1000"`
	TopSenders       int             `mapstructure:"top_senders"       validate:"min=1,max=100"`
	Parallel         bool            `mapstructure:"parallel"`
	WordCloud        WordCloudConfig `mapstructure:"wordcloud"`

	// ConfigFile is the file the settings were read from, if any
	ConfigFile string `mapstructure:"-"`
}

// New returns a viper instance carrying defaults and environment bindings.
// Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (configFile, or chatstat.yaml in the working
// directory or $HOME/.config/chatstat) over the defaults and validates the
// result. A missing default config file is fine; a missing explicit one is not.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("stopwords_path", DefaultStopWordsPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("day_first", true)
	v.SetDefault("default_year", time.Now().Year())
	v.SetDefault("media_placeholder", DefaultMediaPlaceholder)
	v.SetDefault("top_words", DefaultTopWords)
	v.SetDefault("top_senders", DefaultTopSenders)
	v.SetDefault("parallel", true)

	v.SetDefault("wordcloud.width", DefaultWordCloudWidth)
	v.SetDefault("wordcloud.height", DefaultWordCloudHeight)
	v.SetDefault("wordcloud.min_font_size", DefaultWordCloudMinFont)
	v.SetDefault("wordcloud.max_words", DefaultWordCloudMaxWord)
	v.SetDefault("wordcloud.background", DefaultWordCloudBG)
}
