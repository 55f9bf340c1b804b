package previewdaemon

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

// Initialize will store information about a new connection and perform any setup needed.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	s.InitializeParams = params
	if len(params.WorkspaceFolders) > 0 {
		s.WorkspaceRoot = protocol.DocumentURI(params.WorkspaceFolders[0].URI).Filename()
	} else if params.RootURI != "" {
		s.WorkspaceRoot = params.RootURI.Filename()
	}

	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("setting updated session state: %w", err)
	}

	if err := c.docState.InitSession(ctx); err != nil {
		return nil, fmt.Errorf("initializing document tracking: %w", err)
	}

	// Full sync keeps the daemon's copy of each document complete, so snapshot
	// sends never need to reconstruct text from partial edits.
	return &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{
			Name: "YAML Preview Server",
		},
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: []string{CommandOpenPreview},
			},
		},
	}, nil
}

// Initialized handles any actions that need to occur immediately after initialization.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return c.ideGateway.LogMessage(ctx, &protocol.LogMessageParams{
		Message: "Connection to YAML Preview Server is now initialized.",
		Type:    protocol.MessageTypeInfo,
	})
}

// Shutdown is sent just before Exit to indicate that the session will exit.
func (c *controller) Shutdown(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	// Previews are torn down here rather than on Exit so that panels close
	// while the connection can still deliver the notifications.
	if err := c.preview.EndSession(ctx, s.UUID); err != nil {
		c.logger.Errorf("ending preview sessions for %q: %s", s.UUID, err)
	}
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}

	return c.EndSession(ctx, s.UUID)
}

// RequestFullShutdown will set the controller to treat subsequent Shutdown and Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown = true

	return nil
}
