// Package logging holds the process-wide structured logger.
package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize runs.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	// Safe default so packages can log before main configures output.
	Logger = zap.NewNop().Sugar()
}

// Standard field names for structured log lines.
const (
	FieldIndex   = "index"
	FieldID      = "id"
	FieldPxScale = "px_scale"
	FieldNodes   = "nodes"
	FieldEdges   = "edges"
	FieldAtoms   = "atoms"
	FieldSubset  = "subset"
	FieldCount   = "count"
	FieldWorkers = "workers"
	FieldPath    = "path"
	FieldError   = "error"
)

// Initialize replaces Logger. jsonOutput selects zap's production JSON
// encoder; otherwise a console encoder writes to stderr. level is one of
// debug, info, warn, error (empty means info).
func Initialize(jsonOutput bool, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput

	var zl *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		zl, err = cfg.Build()
		if err != nil {
			return errors.Wrap(err, "build json logger")
		}
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}
	Logger = zl.Sugar()
	return nil
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return lvl, errors.Wrapf(err, "log level %q", level)
	}
	return lvl, nil
}
