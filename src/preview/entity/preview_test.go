package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/protocol"
)

func TestIsYAMLDocument(t *testing.T) {
	tests := []struct {
		name       string
		languageID protocol.LanguageIdentifier
		uri        protocol.DocumentURI
		want       bool
	}{
		{
			name:       "yaml language id",
			languageID: "yaml",
			uri:        "file:///sample/config.txt",
			want:       true,
		},
		{
			name:       "yaml extension",
			languageID: "plaintext",
			uri:        "file:///sample/config.yaml",
			want:       true,
		},
		{
			name:       "yml extension",
			languageID: "plaintext",
			uri:        "file:///sample/config.yml",
			want:       true,
		},
		{
			name:       "uppercase extension",
			languageID: "plaintext",
			uri:        "file:///sample/CONFIG.YAML",
			want:       true,
		},
		{
			name:       "not yaml",
			languageID: "go",
			uri:        "file:///sample/main.go",
			want:       false,
		},
		{
			name:       "no extension",
			languageID: "plaintext",
			uri:        "file:///sample/Makefile",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsYAMLDocument(tt.languageID, tt.uri))
		})
	}
}

func TestMessageTargetOrigin(t *testing.T) {
	tests := []struct {
		name   string
		source ContentSource
		want   string
	}{
		{
			name:   "remote pins to resolved origin",
			source: ContentSource{Kind: ContentSourceRemote, Address: "https://ex.com/app", Origin: "https://ex.com"},
			want:   "https://ex.com",
		},
		{
			name:   "local served pins to loopback origin",
			source: ContentSource{Kind: ContentSourceLocalServed, Address: "http://127.0.0.1:54321/index.html", Origin: "http://127.0.0.1:54321"},
			want:   "http://127.0.0.1:54321",
		},
		{
			name:   "bundled falls back to wildcard",
			source: ContentSource{Kind: ContentSourceLocalBundled, Address: "vscode-resource:/install/media/index.html"},
			want:   MessageTargetWildcard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.MessageTargetOrigin())
		})
	}
}

func TestContentSourceKindString(t *testing.T) {
	assert.Equal(t, "remote", ContentSourceRemote.String())
	assert.Equal(t, "local-served", ContentSourceLocalServed.String())
	assert.Equal(t, "local-bundled", ContentSourceLocalBundled.String())
	assert.Equal(t, "unknown", ContentSourceKind(99).String())
}
