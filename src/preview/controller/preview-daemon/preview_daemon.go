// Package previewdaemon implements the yamlpreview-daemon business logic.
package previewdaemon

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	docstate "github.com/uber/yaml-preview/src/preview/controller/doc-state"
	"github.com/uber/yaml-preview/src/preview/controller/preview"
	"github.com/uber/yaml-preview/src/preview/entity"
	notifier "github.com/uber/yaml-preview/src/preview/gateway/ide-client"
	"github.com/uber/yaml-preview/src/preview/mapper"
	"github.com/uber/yaml-preview/src/preview/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"

	// CommandOpenPreview opens a live preview for the document named in the first command argument.
	CommandOpenPreview = "yaml.preview.open"
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// LSP Methods defined per protocol.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) (err error)
	Shutdown(ctx context.Context) (err error)
	Exit(ctx context.Context) error

	// Document related methods.
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error

	// Workspace related methods.
	ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)

	// Custom methods for use within this service.
	PanelClosed(ctx context.Context, params *entity.PanelClosedParams) error
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Sessions   session.Repository
	IdeGateway notifier.Gateway
	Logger     *zap.SugaredLogger
	Config     config.Provider

	DocState docstate.Controller
	Preview  preview.Controller
}

type controller struct {
	sessions   session.Repository
	ideGateway notifier.Gateway
	logger     *zap.SugaredLogger
	shutdowner fx.Shutdowner

	docState docstate.Controller
	preview  preview.Controller

	fullShutdown       bool
	idleTimeoutMinutes time.Duration
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
}

// New creates a new controller for the daemon.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	c := &controller{
		sessions:           p.Sessions,
		ideGateway:         p.IdeGateway,
		logger:             p.Logger,
		shutdowner:         p.Shutdowner,
		docState:           p.DocState,
		preview:            p.Preview,
		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
	}
	c.refreshIdleTimer(ctx)

	return c, nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, uuid uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	if err := c.preview.EndSession(ctx, uuid); err != nil {
		c.logger.Errorf("ending preview sessions for %q: %s", uuid, err)
	}
	if err := c.docState.EndSession(ctx, uuid); err != nil {
		c.logger.Errorf("ending document tracking for %q: %s", uuid, err)
	}

	if err := c.ideGateway.DeregisterClient(ctx, uuid); err != nil {
		c.logger.Error(err)
	}

	return c.sessions.Delete(ctx, uuid)
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}
