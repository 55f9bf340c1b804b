package controller

import (
	docstate "github.com/uber/yaml-preview/src/preview/controller/doc-state"
	"github.com/uber/yaml-preview/src/preview/controller/preview"
	previewdaemon "github.com/uber/yaml-preview/src/preview/controller/preview-daemon"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(previewdaemon.New),
	fx.Provide(docstate.New),
	fx.Provide(preview.New),
)
