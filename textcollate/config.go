package textcollate

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"

	"github.com/amp-labs/amp-collate/collate"
	"github.com/amp-labs/amp-collate/compare"
	"github.com/amp-labs/amp-collate/envutil"
	"github.com/amp-labs/amp-collate/errors"
	"github.com/amp-labs/amp-collate/logger"
	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyBinary          = "binary"
	StrategyCaseInsensitive = "case_insensitive"
	StrategyNatural         = "natural"
	StrategyLocale          = "locale"
)

// Environment variables read by Config.ApplyEnv.
const (
	EnvStrategy         = "COLLATE_STRATEGY"
	EnvLocale           = "COLLATE_LOCALE"
	EnvIgnoreCase       = "COLLATE_IGNORE_CASE"
	EnvIgnoreDiacritics = "COLLATE_IGNORE_DIACRITICS"
	EnvNumeric          = "COLLATE_NUMERIC"
	EnvReverse          = "COLLATE_REVERSE"
)

// Config describes a text collation. The zero value is byte order.
//
// Example YAML:
//
//	strategy: locale
//	locale: de-CH
//	ignore_case: true
//	numeric: true
type Config struct {
	Strategy         string `yaml:"strategy"`
	Locale           string `yaml:"locale"`
	IgnoreCase       bool   `yaml:"ignore_case"`
	IgnoreDiacritics bool   `yaml:"ignore_diacritics"`
	Numeric          bool   `yaml:"numeric"`
	Reverse          bool   `yaml:"reverse"`
}

// LoadConfig decodes a YAML document into a Config. Unknown keys are rejected.
// An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !goerrors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields with any COLLATE_* environment variables that are set.
// Every malformed variable is reported, in the order the variables are listed above.
func (c Config) ApplyEnv() (Config, error) {
	var errs errors.Collection

	c.Strategy = envutil.String(EnvStrategy).ValueOrElse(c.Strategy)

	locale := envutil.String(EnvLocale, envutil.Default(c.Locale), envutil.Validate(checkLocale))
	if locale.HasError() {
		_, err := locale.Value()
		errs.Add(err)
	} else {
		c.Locale = locale.ValueOrElse(c.Locale)
	}

	flags := []struct {
		key   string
		field *bool
	}{
		{EnvIgnoreCase, &c.IgnoreCase},
		{EnvIgnoreDiacritics, &c.IgnoreDiacritics},
		{EnvNumeric, &c.Numeric},
		{EnvReverse, &c.Reverse},
	}

	for _, flag := range flags {
		rdr := envutil.Bool(flag.key)

		switch {
		case rdr.HasError():
			_, err := rdr.Value()
			errs.Add(err)
		case rdr.HasValue():
			*flag.field = rdr.ValueOrElse(*flag.field)
		}
	}

	if errs.HasError() {
		return c, fmt.Errorf("%w: %d malformed environment variable(s): %w",
			errors.ErrInvalidConfig, errs.Len(), errs.GetError())
	}

	return c, nil
}

func checkLocale(tag string) error {
	if tag == "" {
		return nil
	}

	_, err := language.Parse(tag)

	return err //nolint:wrapcheck
}

func (c Config) strategy() string {
	if c.Strategy == "" {
		return StrategyBinary
	}

	return c.Strategy
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs errors.Collection

	switch c.strategy() {
	case StrategyBinary, StrategyCaseInsensitive, StrategyNatural:
		if c.Locale != "" || c.IgnoreCase || c.IgnoreDiacritics || c.Numeric {
			errs.Add(fmt.Errorf("%w: locale options require the %q strategy", errors.ErrInvalidConfig, StrategyLocale))
		}
	case StrategyLocale:
		if c.Locale == "" {
			errs.Add(fmt.Errorf("%w: the %q strategy requires a locale", errors.ErrInvalidConfig, StrategyLocale))
		} else if _, err := language.Parse(c.Locale); err != nil {
			errs.Add(fmt.Errorf("%w: locale %q: %w", errors.ErrInvalidConfig, c.Locale, err))
		}
	default:
		errs.Add(fmt.Errorf("%w: %q", errors.ErrUnknownStrategy, c.Strategy))
	}

	return errs.GetError()
}

// Comparator builds the comparator strategy described by the configuration.
func (c Config) Comparator(ctx context.Context) (compare.Comparator[string], error) { //nolint:ireturn
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var cmp compare.Comparator[string]

	switch c.strategy() {
	case StrategyCaseInsensitive:
		cmp = CaseInsensitive()
	case StrategyNatural:
		cmp = Natural()
	case StrategyLocale:
		cmp = Locale(language.MustParse(c.Locale), c.localeOptions()...)
	default:
		cmp = Binary()
	}

	if c.Reverse {
		cmp = compare.Reverse(cmp)
	}

	logger.Get(ctx).Debug("resolved text collation",
		"strategy", c.strategy(), "locale", c.Locale, "reverse", c.Reverse)

	return cmp, nil
}

func (c Config) localeOptions() []xcollate.Option {
	var opts []xcollate.Option

	if c.IgnoreCase {
		opts = append(opts, xcollate.IgnoreCase)
	}

	if c.IgnoreDiacritics {
		opts = append(opts, xcollate.IgnoreDiacritics)
	}

	if c.Numeric {
		opts = append(opts, xcollate.Numeric)
	}

	return opts
}

// NewCollator builds a Collator over string sequences from the configuration.
func (c Config) NewCollator(ctx context.Context, opts ...collate.Option) (*collate.Collator[string], error) {
	cmp, err := c.Comparator(ctx)
	if err != nil {
		return nil, err
	}

	return collate.New(cmp, opts...), nil
}
