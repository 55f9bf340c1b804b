// Package previewdaemon implements the yamlpreview-daemon service's JSON-RPC handlers.
package previewdaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/yaml-preview/src/preview/controller/preview-daemon"
	"github.com/uber/yaml-preview/src/preview/entity"
	"github.com/uber/yaml-preview/src/preview/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// Handler accepts inbound IDE connections for the yamlpreview-daemon service.
type Handler interface {
	ConnectionManager() jsonrpcfx.ConnectionManager
}

type handler struct {
	previewdaemon     controller.Controller
	connectionManager jsonrpcfx.ConnectionManager
	stats             tally.Scope
}

// New constructs a new yamlpreview-daemon Handler.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) Handler {
	c := jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	jsonrpcmod.RegisterConnectionManager(&c)

	return &handler{
		previewdaemon:     ctrl,
		connectionManager: &c,
		stats:             stats,
	}
}

func (h *handler) ConnectionManager() jsonrpcfx.ConnectionManager {
	return h.connectionManager
}

type jsonRPCConnectionManager struct {
	ctrl  controller.Controller
	stats tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		previewdaemon: c.ctrl,
		uuid:          id,
		stats:         c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
