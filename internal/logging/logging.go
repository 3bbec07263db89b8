// Package logging builds the zap logger used by the subarrays command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config level name to a zap level. Empty means warn.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// New returns a JSON logger at level writing to sink.
//
// The command passes stderr; stdout is reserved for the rendered result.
func New(level string, sink io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(sink)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("subarrays"), nil
}
