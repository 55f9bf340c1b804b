package gateway

import (
	notifier "github.com/uber/yaml-preview/src/preview/gateway/ide-client"
	"go.uber.org/fx"
)

// Module provides gateways for all outbound calls from this daemon.
var Module = fx.Options(
	fx.Provide(notifier.New),
)
