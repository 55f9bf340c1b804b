package errors

import (
	"fmt"

	"go.lsp.dev/protocol"
)

// DocumentNotFoundError indicates that a document is not found.
type DocumentNotFoundError struct {
	Document protocol.TextDocumentIdentifier
}

// Error is an implementation of the error interface.
func (n *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("Document %q not found", n.Document.URI)
}

// DocumentSizeLimitError indicates that a document has exceeded the specified size limit.
type DocumentSizeLimitError struct {
	Size int64
}

// Error is an implementation of the error interface.
func (n *DocumentSizeLimitError) Error() string {
	return fmt.Sprintf("size of %d bytes exceeds permitted limit", n.Size)
}

// NotYAMLDocumentError indicates that a document is not YAML by language id or extension.
type NotYAMLDocumentError struct {
	Document   protocol.TextDocumentIdentifier
	LanguageID protocol.LanguageIdentifier
}

// Error is an implementation of the error interface.
func (n *NotYAMLDocumentError) Error() string {
	return fmt.Sprintf("document %q is not a YAML document (language %q)", n.Document.URI, n.LanguageID)
}

// NoActiveDocumentError indicates that an open request did not reference a tracked document.
type NoActiveDocumentError struct{}

// Error is an implementation of the error interface.
func (n *NoActiveDocumentError) Error() string {
	return "no active document to preview"
}
