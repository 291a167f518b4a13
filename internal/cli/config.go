// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/densemat/matrix"
)

// EnvPrefix namespaces environment overrides: format.row_separator is read
// from MATCALC_FORMAT_ROW_SEPARATOR.
const EnvPrefix = "MATCALC"

// Configuration keys. Flags, environment and the config file all resolve to these.
const (
	keyRowSeparator    = "format.row_separator"
	keyColumnSeparator = "format.column_separator"
	keyDecimals        = "output.decimals"
	keyFormat          = "output.format"
	keyLogLevel        = "logging.level"
	keyConcurrent      = "determinant.concurrent"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults for keys that are not set anywhere.
const (
	DefaultDecimals = 6
	DefaultFormat   = FormatText
	DefaultLogLevel = "warn"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	RowSeparator    string
	ColumnSeparator string
	Decimals        int // -1 disables rounding
	Format          string
	LogLevel        string
	Concurrent      bool
}

// newViper returns a viper instance reading MATCALC_* variables with dots
// mapped to underscores, pre-seeded with the documented defaults.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(keyRowSeparator, string(matrix.DefaultRowSeparator))
	v.SetDefault(keyColumnSeparator, string(matrix.DefaultColumnSeparator))
	v.SetDefault(keyDecimals, DefaultDecimals)
	v.SetDefault(keyFormat, DefaultFormat)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyConcurrent, false)

	return v
}

// loadConfig merges the optional YAML file at path into v and resolves Config.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	cfg := &Config{
		RowSeparator:    v.GetString(keyRowSeparator),
		ColumnSeparator: v.GetString(keyColumnSeparator),
		Decimals:        v.GetInt(keyDecimals),
		Format:          strings.ToLower(v.GetString(keyFormat)),
		LogLevel:        v.GetString(keyLogLevel),
		Concurrent:      v.GetBool(keyConcurrent),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown output format %q (want %s, %s or %s)", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if c.Decimals < -1 {
		return errors.Errorf("decimals must be -1 or greater, got %d", c.Decimals)
	}

	return nil
}

// ParseOptions turns the configured separators into matrix parse options.
// Separators may be written escaped ("\t", "\n").
func (c *Config) ParseOptions() ([]matrix.Option, error) {
	row, err := separatorRune(keyRowSeparator, c.RowSeparator)
	if err != nil {
		return nil, err
	}
	col, err := separatorRune(keyColumnSeparator, c.ColumnSeparator)
	if err != nil {
		return nil, err
	}

	if err = matrix.ValidateSeparators(row, col); err != nil {
		return nil, errors.Wrapf(err, "%s=%q, %s=%q", keyRowSeparator, c.RowSeparator, keyColumnSeparator, c.ColumnSeparator)
	}

	return []matrix.Option{matrix.WithRowSeparator(row), matrix.WithColumnSeparator(col)}, nil
}

// separatorRune decodes a single (possibly escaped) rune.
func separatorRune(key, s string) (rune, error) {
	if strings.HasPrefix(s, `\`) {
		unq, err := strconv.Unquote(`"` + s + `"`)
		if err != nil {
			return 0, errors.Wrapf(err, "%s: bad escape %q", key, s)
		}
		s = unq
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("%s must be a single character, got %q", key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
