package main

import (
	"io"

	"github.com/toejough/catcalc"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module provides a *catcalc.Calculator backed by the native arithmetic.
//
//nolint:gochecknoglobals // fx modules are package-level values
var Module = fx.Options(
	fx.Provide(
		catcalc.NewNative,
		catcalc.New,
	),
)

// newApp builds the dependency graph and fills calc. Extra options are
// applied last, so they can decorate or replace anything Module provides.
func newApp(logger *zap.Logger, calc **catcalc.Calculator, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(logger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		Module,
		fx.Options(opts...),
		fx.Populate(calc),
	)
}

// newLogger returns a development console logger writing to w, or a no-op
// logger when verbose is false.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}
