package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logging"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfig.
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvCurrencySymbol = "CURRENCY_SYMBOL"
	EnvFirstOrderID   = "FIRST_ORDER_ID"
	EnvInteractive    = "INTERACTIVE"
)

type Config struct {
	LogLevel       string
	LogFormat      string
	CurrencySymbol string
	FirstOrderID   order.ID
	Interactive    bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      logging.FormatText,
		CurrencySymbol: kernel.DefaultCurrencySymbol,
		FirstOrderID:   delivery.DefaultFirstOrderID,
		Interactive:    false,
	}
}

// LoadConfig reads settings from the process environment and, for keys not set
// there, from envFile. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		default:
			file = values
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		if v := strings.TrimSpace(file[key]); v != "" {
			return v, true
		}
		return "", false
	}

	cfg := DefaultConfig()
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvCurrencySymbol); ok {
		cfg.CurrencySymbol = v
	}

	var idErr, interactiveErr error
	if v, ok := lookup(EnvFirstOrderID); ok {
		cfg.FirstOrderID, idErr = parseOrderID(v)
	}
	if v, ok := lookup(EnvInteractive); ok {
		cfg.Interactive, interactiveErr = parseBool(EnvInteractive, v)
	}

	if err := errors.Join(idErr, interactiveErr, cfg.Validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var levelErr error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		levelErr = err
	}

	var formatErr error
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		formatErr = errs.NewValueIsInvalidErrorWithCause(EnvLogFormat, fmt.Errorf("%q is not text or json", c.LogFormat))
	}

	var idErr error
	if c.FirstOrderID < 1 {
		idErr = errs.NewValueIsOutOfRangeError(EnvFirstOrderID, c.FirstOrderID, order.ID(1), order.ID(math.MaxInt))
	}

	return errors.Join(levelErr, formatErr, idErr)
}

func parseOrderID(v string) (order.ID, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(EnvFirstOrderID, err)
	}
	return order.ID(n), nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return b, nil
}
