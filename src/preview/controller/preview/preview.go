package preview

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	docstate "github.com/uber/yaml-preview/src/preview/controller/doc-state"
	"github.com/uber/yaml-preview/src/preview/entity"
	notifier "github.com/uber/yaml-preview/src/preview/gateway/ide-client"
	"github.com/uber/yaml-preview/src/preview/internal/clock"
	"github.com/uber/yaml-preview/src/preview/internal/contentserver"
	"github.com/uber/yaml-preview/src/preview/internal/contentsource"
	previewerrors "github.com/uber/yaml-preview/src/preview/internal/errors"
	"github.com/uber/yaml-preview/src/preview/internal/framepolicy"
	"github.com/uber/yaml-preview/src/preview/internal/fs"
	"github.com/uber/yaml-preview/src/preview/mapper"
	"github.com/uber/yaml-preview/src/preview/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_nameKey   = "preview"
	_configKey = "preview"

	_defaultDebounce = 300 * time.Millisecond

	_msgNotYAML    = "Preview is only available for YAML documents."
	_msgNoDocument = "Open a YAML document to use the preview."
)

// Controller manages live preview panels for open YAML documents.
type Controller interface {
	// OpenPreview opens a preview panel for the given document, or reveals the
	// existing panel when the document is already being previewed.
	OpenPreview(ctx context.Context, doc protocol.TextDocumentIdentifier) error

	// DocumentChanged schedules a snapshot send for a changed document. A
	// document without a live preview is ignored.
	DocumentChanged(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error

	// DocumentClosed tears down the preview for a closed document, if one exists.
	DocumentClosed(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error

	// PanelClosed handles a host notification that the user closed a preview
	// panel. Stale notifications for already-evicted panels are tolerated.
	PanelClosed(ctx context.Context, params *entity.PanelClosedParams) error

	// EndSession tears down all previews belonging to a connection session.
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Sessions   session.Repository
	DocState   docstate.Controller
	IdeGateway notifier.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Config     config.Provider
	FS         fs.PreviewFS
	Clock      clock.Clock
}

type previewConfig struct {
	RemoteURL       string `yaml:"remoteUrl"`
	DebounceMs      *int   `yaml:"debounceMs"`
	AllowHTTP       *bool  `yaml:"allowHttp"`
	BundledPagePath string `yaml:"bundledPagePath"`
}

type controller struct {
	sessions   session.Repository
	docState   docstate.Controller
	ideGateway notifier.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope
	clock      clock.Clock

	registry *registry

	remoteURL       string
	debounce        time.Duration
	allowHTTP       bool
	bundledPagePath string

	// startServer is swapped in tests to avoid binding real ports.
	startServer func(onPayloadChange func()) (payloadServer, error)
}

// New creates a new controller for YAML preview sessions.
func New(p Params) Controller {
	var cfg previewConfig
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		panic(fmt.Errorf("unable to get preview settings from config: %w", err))
	}

	debounce := _defaultDebounce
	if cfg.DebounceMs != nil {
		debounce = time.Duration(*cfg.DebounceMs) * time.Millisecond
	}

	allowHTTP := true
	if cfg.AllowHTTP != nil {
		allowHTTP = *cfg.AllowHTTP
	}

	c := &controller{
		sessions:        p.Sessions,
		docState:        p.DocState,
		ideGateway:      p.IdeGateway,
		logger:          p.Logger.With("controller", _nameKey),
		stats:           p.Stats.SubScope("preview"),
		clock:           p.Clock,
		remoteURL:       cfg.RemoteURL,
		debounce:        debounce,
		allowHTTP:       allowHTTP,
		bundledPagePath: cfg.BundledPagePath,
	}
	c.registry = newRegistry(c.stats)
	c.startServer = func(onPayloadChange func()) (payloadServer, error) {
		return contentserver.Start(contentserver.Params{
			Logger:          c.logger,
			FS:              p.FS,
			Stats:           c.stats,
			PayloadPath:     c.bundledPagePath,
			OnPayloadChange: onPayloadChange,
		})
	}
	return c
}

func (c *controller) OpenPreview(ctx context.Context, doc protocol.TextDocumentIdentifier) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := c.docState.GetTextDocument(ctx, doc)
	if err != nil {
		var notFound *previewerrors.DocumentNotFoundError
		if stderrors.As(err, &notFound) {
			c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
				Type:    protocol.MessageTypeWarning,
				Message: _msgNoDocument,
			})
		}
		return fmt.Errorf("getting document to preview: %w", err)
	}

	if !entity.IsYAMLDocument(item.LanguageID, item.URI) {
		c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeWarning,
			Message: _msgNotYAML,
		})
		return &previewerrors.NotYAMLDocumentError{Document: doc, LanguageID: item.LanguageID}
	}

	// Opening is idempotent per document: a second request brings the existing panel forward.
	if existing, ok := c.registry.get(s.UUID, doc.URI); ok {
		return c.ideGateway.RevealPanel(ctx, &entity.PanelParams{PanelID: existing.panelID})
	}

	// Detach panel-bound work from the request so that sends scheduled after
	// this call returns still carry the session identity.
	sessionCtx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)

	var server payloadServer
	source := contentsource.Resolve(c.remoteURL, c.allowHTTP, func() (string, error) {
		srv, err := c.startServer(func() { c.refresh(sessionCtx, s.UUID, doc) })
		if err != nil {
			c.logger.Warnw("unable to start loopback content server", zap.Error(err))
			return "", err
		}
		server = srv
		return srv.BaseURL(), nil
	}, framepolicy.BundledAddress(c.bundledPagePath))

	snapshot := mapper.DocumentToSnapshot(item)
	title := fmt.Sprintf("Preview %s", snapshot.FileName)

	policy := framepolicy.Build(source)
	shell, err := policy.RenderShell(title)
	if err != nil {
		if server != nil {
			err = multierr.Append(err, server.Stop())
		}
		return fmt.Errorf("rendering preview shell: %w", err)
	}

	result, err := c.ideGateway.CreatePanel(ctx, &entity.CreatePanelParams{Title: title, HTML: shell})
	if err != nil {
		if server != nil {
			err = multierr.Append(err, server.Stop())
		}
		return fmt.Errorf("creating preview panel: %w", err)
	}

	ps := &previewSession{
		sessionUUID: s.UUID,
		document:    doc,
		panelID:     result.PanelID,
		source:      source,
		server:      server,
	}
	ps.streamer = newStreamer(c.debounce, c.clock, func(snapshot entity.ChangeSnapshot) {
		c.sendSnapshot(sessionCtx, ps, snapshot)
	})
	c.registry.add(ps)

	c.logger.Infow("preview opened",
		"uri", doc.URI,
		"source", source.Kind.String(),
		"panel", result.PanelID,
	)

	ps.streamer.schedule(snapshot)
	return nil
}

func (c *controller) DocumentChanged(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	ps, ok := c.registry.get(s.UUID, params.TextDocument.URI)
	if !ok {
		return nil
	}

	item, err := c.docState.GetTextDocument(ctx, params.TextDocument.TextDocumentIdentifier)
	if err != nil {
		return fmt.Errorf("getting changed document: %w", err)
	}

	ps.streamer.schedule(mapper.DocumentToSnapshot(item))
	return nil
}

func (c *controller) DocumentClosed(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	ps, ok := c.registry.remove(s.UUID, params.TextDocument.URI)
	if !ok {
		return nil
	}
	return c.teardown(ctx, ps, true)
}

func (c *controller) PanelClosed(ctx context.Context, params *entity.PanelClosedParams) error {
	ps, ok := c.registry.removeByPanel(params.PanelID)
	if !ok {
		// The panel was already evicted, e.g. a user close racing a document close.
		return nil
	}

	// The host disposed the panel already, so only local resources are released.
	return c.teardown(ctx, ps, false)
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	var err error
	for _, ps := range c.registry.removeSession(id) {
		err = multierr.Append(err, c.teardown(ctx, ps, true))
	}
	return err
}

// teardown releases everything a preview owns. Steps are best effort: a
// failing step never prevents the remaining ones from running.
func (c *controller) teardown(ctx context.Context, ps *previewSession, closePanel bool) error {
	ps.streamer.dispose()

	var err error
	if ps.server != nil {
		err = multierr.Append(err, ps.server.Stop())
	}
	if closePanel {
		err = multierr.Append(err, c.ideGateway.ClosePanel(ctx, &entity.PanelParams{PanelID: ps.panelID}))
	}

	c.logger.Infow("preview closed", "uri", ps.document.URI, "panel", ps.panelID)
	return err
}

// refresh replaces the panel shell and re-sends the current document
// snapshot, used when the served payload changes on disk while a preview is
// open.
func (c *controller) refresh(ctx context.Context, sessionUUID uuid.UUID, doc protocol.TextDocumentIdentifier) {
	ps, ok := c.registry.get(sessionUUID, doc.URI)
	if !ok {
		return
	}

	item, err := c.docState.GetTextDocument(ctx, doc)
	if err != nil {
		c.logger.Warnw("unable to refresh preview", "uri", doc.URI, zap.Error(err))
		return
	}
	snapshot := mapper.DocumentToSnapshot(item)

	// Replacing the shell reloads the edited page. The rebuilt policy mints a
	// fresh nonce for the relay script.
	shell, err := framepolicy.Build(ps.source).RenderShell(fmt.Sprintf("Preview %s", snapshot.FileName))
	if err != nil {
		c.logger.Warnw("unable to rebuild preview shell", "uri", doc.URI, zap.Error(err))
		return
	}
	if err := c.ideGateway.SetPanelContent(ctx, &entity.SetPanelContentParams{
		PanelID: ps.panelID,
		HTML:    shell,
	}); err != nil {
		c.logger.Warnw("unable to replace preview shell", "uri", doc.URI, zap.Error(err))
		return
	}

	ps.streamer.schedule(snapshot)
}

func (c *controller) sendSnapshot(ctx context.Context, ps *previewSession, snapshot entity.ChangeSnapshot) {
	msg, err := mapper.SnapshotToMessage(snapshot)
	if err != nil {
		c.logger.Errorw("unable to encode snapshot", "uri", snapshot.URI, zap.Error(err))
		return
	}

	if err := c.ideGateway.PostMessageToPanel(ctx, &entity.PostMessageParams{
		PanelID: ps.panelID,
		Message: msg,
	}); err != nil {
		c.logger.Warnw("unable to post snapshot to panel", "uri", snapshot.URI, zap.Error(err))
		return
	}
	c.stats.Counter("snapshots_sent").Inc(1)
}
