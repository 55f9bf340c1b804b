// Package factory provides user-defined factories for commonly constructed values in tests.
package factory

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// YAMLDocumentItem is a factory for a YAML text document with the given uri, version and text.
func YAMLDocumentItem(docURI protocol.DocumentURI, version int32, text string) protocol.TextDocumentItem {
	return protocol.TextDocumentItem{
		URI:        docURI,
		LanguageID: "yaml",
		Version:    version,
		Text:       text,
	}
}
