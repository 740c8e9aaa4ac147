// Package hjarta wires the configuration store into an Fx application.
package hjarta

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/loader/file"
	"github.com/0xalexb/hjarta-config/logging"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

// ModuleName is the name of the Fx module returned by NewModule.
const ModuleName = "config"

// ErrEmptyPath is returned when no source path is configured.
var ErrEmptyPath = errors.New("config path must not be empty")

type loggerParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module providing a *file.Loader, the same loader as
// config.Loader, and a *config.Store reading from it.
//
// A *slog.Logger already present in the container is used for both; otherwise one is
// built at the level set by WithLogLevel.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return newModule(options)
}

// NewModuleFromEnv is NewModule with every option left unset by opts taken from the
// HJARTA_CONFIG_PATH, HJARTA_CONFIG_ENV, HJARTA_CONFIG_EXT, HJARTA_CONFIG_CACHE_EMPTY
// and HJARTA_LOG_LEVEL environment variables.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModuleFromEnv(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	var fromEnv Options

	err := env.Parse(&fromEnv)
	if err != nil {
		return fx.Error(fmt.Errorf("parsing environment: %w", err))
	}

	err = mergo.Merge(&options, fromEnv)
	if err != nil {
		return fx.Error(fmt.Errorf("merging options: %w", err))
	}

	return newModule(options)
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func newModule(options Options) fx.Option {
	if options.Path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module(ModuleName,
		fx.Provide(
			newLoader(options),
			func(loader *file.Loader) config.Loader { return loader },
			newStore(options),
		),
	)
}

func newLoader(options Options) func(loggerParams) *file.Loader {
	return func(params loggerParams) *file.Loader {
		return file.NewLoader(options.Path,
			file.WithExtension(options.Extension),
			file.WithLogger(params.resolve(options.LogLevel)),
		)
	}
}

func newStore(options Options) func(config.Loader, loggerParams) *config.Store {
	return func(loader config.Loader, params loggerParams) *config.Store {
		storeOpts := []config.StoreOption{
			config.WithLogger(params.resolve(options.LogLevel)),
		}

		if options.CacheEmptyGroups {
			storeOpts = append(storeOpts, config.WithEmptyGroupCaching())
		}

		return config.NewStore(loader, options.Environment, storeOpts...)
	}
}

func (p loggerParams) resolve(level string) *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return logging.NewLogger(logging.LoggerConfig{Level: level, Component: ModuleName}, os.Stderr)
}
