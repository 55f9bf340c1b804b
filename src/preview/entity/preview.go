// Package entity contains the domain logic for the yamlpreview-daemon service.
package entity

import (
	"path"
	"strings"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// PreviewConfigKey is the config namespace for preview related settings.
const PreviewConfigKey = "preview"

const _yamlLanguageID = "yaml"

// Session entity representing a single IDE connection.
type Session struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	WorkspaceRoot    string                     `json:"workspaceRoot" zap:"workspaceRoot"`
}

// ChangeSnapshot is a complete representation of a document's state at a point in time.
// Snapshots are ephemeral and rebuilt from the tracked document before each send.
type ChangeSnapshot struct {
	Text       string
	URI        protocol.DocumentURI
	FileName   string
	LanguageID string
	Version    int32
}

// IsYAMLDocument reports whether a document should be treated as YAML,
// either by its declared language identifier or by file extension.
func IsYAMLDocument(languageID protocol.LanguageIdentifier, docURI protocol.DocumentURI) bool {
	if strings.EqualFold(string(languageID), _yamlLanguageID) {
		return true
	}

	switch strings.ToLower(path.Ext(docURI.Filename())) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
