package docstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	previewerrors "github.com/uber/yaml-preview/src/preview/internal/errors"
	"github.com/uber/yaml-preview/src/preview/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey        = "doc-state"
	_maxFileSizeKey = "maxFileSizeBytes"
)

// Controller keeps the daemon's copy of each open document current.
// Documents are synced with full text, so the stored entry always holds the complete contents as of the last change.
type Controller interface {
	// InitSession adds an entry to keep track of this session's documents.
	InitSession(ctx context.Context) error
	// EndSession removes a session's documents.
	EndSession(ctx context.Context, id uuid.UUID) error

	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error

	// GetTextDocument returns the current version of the text document as of the last received DidChange event.
	GetTextDocument(ctx context.Context, doc protocol.TextDocumentIdentifier) (protocol.TextDocumentItem, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Sessions session.Repository
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Config   config.Provider
}

type documentStore map[uuid.UUID]map[protocol.TextDocumentIdentifier]protocol.TextDocumentItem

type controller struct {
	sessions         session.Repository
	logger           *zap.SugaredLogger
	documents        documentStore
	documentsMu      sync.RWMutex
	stats            tally.Scope
	maxFileSizeBytes int64
}

// New creates a new controller for document state.
func New(p Params) Controller {
	var maxFileSizeBytes int64
	if err := p.Config.Get(_maxFileSizeKey).Populate(&maxFileSizeBytes); err != nil || maxFileSizeBytes == 0 {
		panic(fmt.Errorf("unable to get maximum file size from config: %w", err))
	}

	c := &controller{
		sessions:         p.Sessions,
		logger:           p.Logger.With("controller", _nameKey),
		documents:        make(documentStore),
		stats:            p.Stats.SubScope("doc_state"),
		maxFileSizeBytes: maxFileSizeBytes,
	}
	defer c.updateMetrics()
	return c
}

func (c *controller) InitSession(ctx context.Context) error {
	defer c.updateMetrics()
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.documentsMu.Lock()
	defer c.documentsMu.Unlock()
	c.documents[s.UUID] = make(map[protocol.TextDocumentIdentifier]protocol.TextDocumentItem)
	return nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.updateMetrics()

	c.documentsMu.Lock()
	defer c.documentsMu.Unlock()
	delete(c.documents, id)
	return nil
}

// DidOpen adds an entry for a newly opened document and stores its initial contents.
func (c *controller) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	defer c.updateMetrics()
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.documentsMu.Lock()
	defer c.documentsMu.Unlock()
	if c.documents[s.UUID] == nil {
		return &previewerrors.UUIDNotFoundError{UUID: s.UUID}
	}

	if err := c.validateSize(params.TextDocument.Text); err != nil {
		// It is expected that some documents will exceed configured size limit. Log a warning which can be used to monitor and adjust the threshold.
		// If there are future attempts to access this document, those will result in errors.
		c.logger.Warnf("unable to track open document %q: %v", params.TextDocument.URI, err)
		return nil
	}

	c.documents[s.UUID][protocol.TextDocumentIdentifier{URI: params.TextDocument.URI}] = params.TextDocument
	return nil
}

// DidChange replaces the stored document with the latest full text.
func (c *controller) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.documentsMu.Lock()
	defer c.documentsMu.Unlock()
	doc, ok := c.documents[s.UUID][params.TextDocument.TextDocumentIdentifier]
	if !ok {
		return &previewerrors.DocumentNotFoundError{Document: params.TextDocument.TextDocumentIdentifier}
	}

	// Sessions are initialized with full sync, so the final change entry carries the complete document.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	if err := c.validateSize(text); err != nil {
		return fmt.Errorf("unable to add changes to document %q: %w", doc.URI, err)
	}

	doc.Text = text
	doc.Version = params.TextDocument.Version
	c.documents[s.UUID][params.TextDocument.TextDocumentIdentifier] = doc
	return nil
}

// DidClose deletes the entry for a closed document.
func (c *controller) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	defer c.updateMetrics()
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.documentsMu.Lock()
	defer c.documentsMu.Unlock()
	delete(c.documents[s.UUID], params.TextDocument)
	return nil
}

func (c *controller) GetTextDocument(ctx context.Context, doc protocol.TextDocumentIdentifier) (protocol.TextDocumentItem, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return protocol.TextDocumentItem{}, err
	}

	c.documentsMu.RLock()
	defer c.documentsMu.RUnlock()

	if _, ok := c.documents[s.UUID]; !ok {
		return protocol.TextDocumentItem{}, &previewerrors.UUIDNotFoundError{UUID: s.UUID}
	}

	entry, ok := c.documents[s.UUID][doc]
	if !ok {
		return protocol.TextDocumentItem{}, &previewerrors.DocumentNotFoundError{Document: doc}
	}
	return entry, nil
}

func (c *controller) updateMetrics() {
	c.documentsMu.RLock()
	defer c.documentsMu.RUnlock()

	openDocs := 0
	openBytes := 0
	for _, sessionDocs := range c.documents {
		openDocs += len(sessionDocs)
		for _, entry := range sessionDocs {
			openBytes += len([]byte(entry.Text))
		}
	}
	c.stats.Gauge("open_docs").Update(float64(openDocs))
	c.stats.Gauge("open_bytes").Update(float64(openBytes))
}

func (c *controller) validateSize(text string) error {
	size := int64(len([]byte(text)))
	if size > c.maxFileSizeBytes {
		return &previewerrors.DocumentSizeLimitError{Size: size}
	}
	return nil
}
