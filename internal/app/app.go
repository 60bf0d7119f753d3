package app

import (
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

// New loads the configuration, initialises logging and returns an fx app
// holding every component plus opts.
func New(opts ...fx.Option) *fx.App {
	conf := config.MustLoad()
	logger.MustInit(conf.Env, conf.Log.Level)
	log := logger.MustNamed("app")
	log.Debugw("config loaded", "config", conf)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		providers(),
		fx.Supply(conf),
		fx.Options(opts...),
	)
}

func Invoke(funcs ...any) *fx.App {
	return New(fx.Invoke(funcs...))
}
