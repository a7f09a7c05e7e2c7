package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
	"github.com/arloliu/eeprom/internal/options"
)

// Config holds the settings used to bind a Layout.
type Config struct {
	version  format.LayoutVersion
	logger   *zap.Logger
	rollback bool
}

// newConfig returns the defaults: auto-detection, no logging, rollback on failure.
func newConfig() *Config {
	return &Config{
		version:  format.LayoutAuto,
		logger:   zap.NewNop(),
		rollback: true,
	}
}

// setVersion sets the requested layout version.
func (c *Config) setVersion(v format.LayoutVersion) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLayoutVersion, v)
	}
	c.version = v

	return nil
}

// Option represents a functional option for configuring a Layout.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithVersion forces the layout version instead of detecting it from the
// marker byte. format.LayoutRaw binds the whole record as one raw field.
// It defaults to format.LayoutAuto.
func WithVersion(v format.LayoutVersion) Option {
	return options.Named("version", func(c *Config) error {
		return c.setVersion(v)
	})
}

// WithLogger installs a logger for batch operations. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithRollback controls what a rejected batch leaves behind.
//
// When enabled (the default), the record is restored to its state before the
// batch. When disabled, entries applied before the failing one stay in the
// buffer; the batch still reports zero applied changes.
func WithRollback(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.rollback = enabled
	})
}
