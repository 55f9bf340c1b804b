package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/yaml-preview/src/preview/gateway"
	"github.com/uber/yaml-preview/src/preview/handler"
	"github.com/uber/yaml-preview/src/preview/internal/clock"
	"github.com/uber/yaml-preview/src/preview/internal/core"
	"github.com/uber/yaml-preview/src/preview/internal/fs"
	"github.com/uber/yaml-preview/src/preview/internal/jsonrpcfx"
	"github.com/uber/yaml-preview/src/preview/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the yamlpreview-daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "yamlpreview-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
