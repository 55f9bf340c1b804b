package previewdaemon

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
)

// DidOpen starts tracking the contents of a newly opened document.
func (c *controller) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	if err := c.docState.DidOpen(ctx, params); err != nil {
		return fmt.Errorf("tracking opened document: %w", err)
	}
	return nil
}

// DidChange updates the tracked document and schedules a preview snapshot if one is live.
func (c *controller) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if err := c.docState.DidChange(ctx, params); err != nil {
		return fmt.Errorf("applying document change: %w", err)
	}
	if err := c.preview.DocumentChanged(ctx, params); err != nil {
		return fmt.Errorf("scheduling preview update: %w", err)
	}
	return nil
}

// DidClose stops tracking a document and tears down its preview, if any.
func (c *controller) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	return multierr.Append(
		c.preview.DocumentClosed(ctx, params),
		c.docState.DidClose(ctx, params),
	)
}
