package framepolicy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/yaml-preview/src/preview/entity"
)

func TestBuildRemote(t *testing.T) {
	p := Build(entity.ContentSource{
		Kind:    entity.ContentSourceRemote,
		Address: "https://ex.com/app",
		Origin:  "https://ex.com",
	})

	assert.Equal(t, "https://ex.com/app", p.FrameAddress)
	assert.Equal(t, []string{"https://ex.com"}, p.IsolationOrigins)
	assert.Equal(t, "https://ex.com", p.MessageTargetOrigin)
	assert.NotEmpty(t, p.Nonce)
}

func TestBuildLocalServed(t *testing.T) {
	p := Build(entity.ContentSource{
		Kind:    entity.ContentSourceLocalServed,
		Address: "http://127.0.0.1:54321/index.html",
		Origin:  "http://127.0.0.1:54321",
	})

	assert.Equal(t, []string{"http://127.0.0.1:54321"}, p.IsolationOrigins)
	assert.Equal(t, "http://127.0.0.1:54321", p.MessageTargetOrigin)
}

func TestBuildLocalBundled(t *testing.T) {
	p := Build(entity.ContentSource{
		Kind:    entity.ContentSourceLocalBundled,
		Address: "vscode-resource:/install/media/index.html",
	})

	assert.Equal(t, []string{"vscode-resource:"}, p.IsolationOrigins)
	assert.Equal(t, entity.MessageTargetWildcard, p.MessageTargetOrigin)
}

func TestNonceIsFreshPerBuild(t *testing.T) {
	src := entity.ContentSource{Kind: entity.ContentSourceRemote, Address: "https://ex.com/app", Origin: "https://ex.com"}
	first := Build(src)
	second := Build(src)
	assert.NotEqual(t, first.Nonce, second.Nonce)
}

func TestContentSecurityPolicy(t *testing.T) {
	p := Policy{
		IsolationOrigins: []string{"https://ex.com"},
		Nonce:            "abc123",
	}

	csp := p.ContentSecurityPolicy()
	assert.Contains(t, csp, "default-src 'none'")
	assert.Contains(t, csp, "frame-src https://ex.com")
	assert.Contains(t, csp, "script-src 'nonce-abc123'")
}

func TestRenderShell(t *testing.T) {
	p := Build(entity.ContentSource{
		Kind:    entity.ContentSourceLocalServed,
		Address: "http://127.0.0.1:54321/index.html",
		Origin:  "http://127.0.0.1:54321",
	})

	shell, err := p.RenderShell("Preview config.yaml")
	require.NoError(t, err)

	assert.Contains(t, shell, `src="http://127.0.0.1:54321/index.html"`)
	assert.Contains(t, shell, `nonce="`+p.Nonce+`"`)
	assert.Contains(t, shell, "Content-Security-Policy")
	assert.Contains(t, shell, `"http://127.0.0.1:54321"`)
	assert.Contains(t, shell, "Preview config.yaml")
}

func TestRenderShellEscapesInterpolatedValues(t *testing.T) {
	p := Policy{
		FrameAddress:        "https://ex.com/app",
		IsolationOrigins:    []string{"https://ex.com"},
		MessageTargetOrigin: "https://ex.com",
		Nonce:               "n",
	}

	shell, err := p.RenderShell(`</title><script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, shell, "<script>alert(1)</script>")
}

func TestRenderShellExactlyOneInlineScript(t *testing.T) {
	p := Build(entity.ContentSource{
		Kind:    entity.ContentSourceRemote,
		Address: "https://ex.com/app",
		Origin:  "https://ex.com",
	})

	shell, err := p.RenderShell("Preview")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(shell, "<script nonce="))
}
