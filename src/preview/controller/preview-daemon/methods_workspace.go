package previewdaemon

import (
	"context"
	"fmt"

	"github.com/uber/yaml-preview/src/preview/entity"
	"github.com/uber/yaml-preview/src/preview/internal/errors"
	"github.com/uber/yaml-preview/src/preview/mapper"
	"go.lsp.dev/protocol"
)

const _msgNoActiveDocument = "Open a YAML document to use the preview."

// ExecuteCommand dispatches workspace commands provided by this server.
func (c *controller) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	switch params.Command {
	case CommandOpenPreview:
		doc, ok := mapper.CommandArgumentsToDocumentIdentifier(params.Arguments)
		if !ok {
			c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
				Type:    protocol.MessageTypeWarning,
				Message: _msgNoActiveDocument,
			})
			return nil, &errors.NoActiveDocumentError{}
		}
		return nil, c.preview.OpenPreview(ctx, doc)
	default:
		return nil, fmt.Errorf("unsupported command %q", params.Command)
	}
}

// PanelClosed handles the host's notification that a preview panel was disposed.
func (c *controller) PanelClosed(ctx context.Context, params *entity.PanelClosedParams) error {
	return c.preview.PanelClosed(ctx, params)
}
