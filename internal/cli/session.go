// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wagerig/config"
)

// session is the per-invocation state shared by the solver commands.
type session struct {
	exp    *config.Experiment
	logger *zap.Logger
	runID  string
	out    *printer
}

// newSession loads and validates the experiment and builds the logger.
// Callers must defer s.close().
func newSession(cmd *cobra.Command, opts *RootOptions) (*session, error) {
	exp, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading configuration", err)
	}
	if err := exp.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	level := exp.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	logger, err := newLogger(cmd, level)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "initializing logger", err)
	}

	runID := uuid.NewString()
	return &session{
		exp:    exp,
		logger: logger.With(zap.String("run_id", runID), zap.String("command", cmd.Name())),
		runID:  runID,
		out:    &printer{format: opts.Format, w: cmd.OutOrStdout()},
	}, nil
}

// newLogger builds a production JSON logger that writes to the command's
// stderr, so that structured output on stdout stays clean.
func newLogger(cmd *cobra.Command, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(cmd.ErrOrStderr()),
		cfg.Level,
	)
	return zap.New(core), nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
