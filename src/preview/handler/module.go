package handler

import (
	controller "github.com/uber/yaml-preview/src/preview/controller"
	previewdaemon "github.com/uber/yaml-preview/src/preview/controller/preview-daemon"
	handler "github.com/uber/yaml-preview/src/preview/handler/preview-daemon"
	"github.com/uber/yaml-preview/src/preview/repository/session"
	"go.uber.org/fx"
)

// Module provides the yamlpreview-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m previewdaemon.Controller) {}),
)
