package preview

import (
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/yaml-preview/src/preview/entity"
	"go.lsp.dev/protocol"
)

// payloadServer is the slice of a loopback content server used by this controller.
type payloadServer interface {
	BaseURL() string
	Stop() error
}

// previewSession holds everything owned by one live preview of one document.
type previewSession struct {
	sessionUUID uuid.UUID
	document    protocol.TextDocumentIdentifier
	panelID     uuid.UUID
	source      entity.ContentSource
	server      payloadServer
	streamer    *streamer
}

// registry tracks live previews keyed by (connection session, document), with
// a secondary index by panel id for host-initiated close notifications.
type registry struct {
	mu       sync.Mutex
	previews map[uuid.UUID]map[protocol.DocumentURI]*previewSession
	byPanel  map[uuid.UUID]*previewSession
	stats    tally.Scope
}

func newRegistry(stats tally.Scope) *registry {
	return &registry{
		previews: make(map[uuid.UUID]map[protocol.DocumentURI]*previewSession),
		byPanel:  make(map[uuid.UUID]*previewSession),
		stats:    stats,
	}
}

func (r *registry) get(sessionUUID uuid.UUID, uri protocol.DocumentURI) (*previewSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ps, ok := r.previews[sessionUUID][uri]
	return ps, ok
}

func (r *registry) add(ps *previewSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.previews[ps.sessionUUID] == nil {
		r.previews[ps.sessionUUID] = make(map[protocol.DocumentURI]*previewSession)
	}
	r.previews[ps.sessionUUID][ps.document.URI] = ps
	r.byPanel[ps.panelID] = ps
	r.updateMetrics()
}

// remove evicts the preview for the given document, if one exists.
func (r *registry) remove(sessionUUID uuid.UUID, uri protocol.DocumentURI) (*previewSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ps, ok := r.previews[sessionUUID][uri]
	if !ok {
		return nil, false
	}
	r.evict(ps)
	return ps, true
}

// removeByPanel evicts the preview owning the given panel, if one exists.
func (r *registry) removeByPanel(panelID uuid.UUID) (*previewSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ps, ok := r.byPanel[panelID]
	if !ok {
		return nil, false
	}
	r.evict(ps)
	return ps, true
}

// removeSession evicts and returns all previews belonging to a connection session.
func (r *registry) removeSession(sessionUUID uuid.UUID) []*previewSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]*previewSession, 0, len(r.previews[sessionUUID]))
	for _, ps := range r.previews[sessionUUID] {
		removed = append(removed, ps)
	}
	for _, ps := range removed {
		r.evict(ps)
	}
	return removed
}

// evict must be called with the registry lock held.
func (r *registry) evict(ps *previewSession) {
	delete(r.previews[ps.sessionUUID], ps.document.URI)
	if len(r.previews[ps.sessionUUID]) == 0 {
		delete(r.previews, ps.sessionUUID)
	}
	delete(r.byPanel, ps.panelID)
	r.updateMetrics()
}

// updateMetrics must be called with the registry lock held.
func (r *registry) updateMetrics() {
	r.stats.Gauge("active_previews").Update(float64(len(r.byPanel)))
}
