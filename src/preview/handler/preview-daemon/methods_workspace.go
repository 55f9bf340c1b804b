package previewdaemon

import (
	"context"

	"github.com/uber/yaml-preview/src/preview/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.previewdaemon.ExecuteCommand(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) PanelClosed(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToPanelClosedParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.previewdaemon.PanelClosed(ctx, params)
	return reply(ctx, nil, err)
}
