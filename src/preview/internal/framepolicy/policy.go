// Package framepolicy generates the isolation policy and HTML shell for a preview panel.
package framepolicy

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/uber/yaml-preview/src/preview/entity"
)

// _resourceSchemeSource is the CSP source token for the host's sandboxed
// resource namespace, used when the frame loads a bundled page whose effective
// origin cannot be enumerated ahead of time.
const _resourceSchemeSource = "vscode-resource:"

// Policy describes how a preview panel embeds and talks to its content frame.
type Policy struct {
	// FrameAddress is the location loaded into the nested content frame.
	FrameAddress string

	// IsolationOrigins is the allow-list of sources the frame may be loaded from.
	IsolationOrigins []string

	// MessageTargetOrigin is the origin snapshot messages are posted to. It is
	// the concrete resolved origin whenever one is known, and the wildcard only
	// for bundled resources.
	MessageTargetOrigin string

	// Nonce authorizes exactly the one inline relay script in the shell.
	// Minted fresh per session.
	Nonce string
}

// BundledAddress maps a bundled page path into the host resource namespace.
func BundledAddress(path string) string {
	return _resourceSchemeSource + path
}

// Build derives the embedding policy for a resolved content source.
func Build(src entity.ContentSource) Policy {
	p := Policy{
		FrameAddress:        src.Address,
		MessageTargetOrigin: src.MessageTargetOrigin(),
		Nonce:               uuid.Must(uuid.NewV4()).String(),
	}

	switch src.Kind {
	case entity.ContentSourceLocalBundled:
		p.IsolationOrigins = []string{_resourceSchemeSource}
	default:
		p.IsolationOrigins = []string{src.Origin}
	}

	return p
}

// ContentSecurityPolicy renders the policy as a content-security directive set.
// Everything is denied by default; only the resolved frame sources and the
// nonce-bearing inline script and style are permitted.
func (p Policy) ContentSecurityPolicy() string {
	return fmt.Sprintf(
		"default-src 'none'; frame-src %s; script-src 'nonce-%s'; style-src 'nonce-%s'",
		strings.Join(p.IsolationOrigins, " "), p.Nonce, p.Nonce,
	)
}
