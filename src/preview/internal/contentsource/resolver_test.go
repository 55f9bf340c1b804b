package contentsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/yaml-preview/src/preview/entity"
)

const _bundled = "vscode-resource:/install/media/index.html"

func TestResolveRemote(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		wantRemote bool
		wantOrigin string
	}{
		{
			name:       "https remote honored",
			remote:     "https://ex.com/app",
			wantRemote: true,
			wantOrigin: "https://ex.com",
		},
		{
			name:       "https remote with port",
			remote:     "https://ex.com:8443/app",
			wantRemote: true,
			wantOrigin: "https://ex.com:8443",
		},
		{
			name:   "plain http never trusted",
			remote: "http://insecure.example",
		},
		{
			name:   "malformed url treated as absent",
			remote: "ht tp://broken url",
		},
		{
			name:   "scheme only",
			remote: "https://",
		},
		{
			name:   "empty remote",
			remote: "",
		},
		{
			name:   "relative path",
			remote: "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Resolve(tt.remote, false, nil, _bundled)
			if tt.wantRemote {
				assert.Equal(t, entity.ContentSourceRemote, src.Kind)
				assert.Equal(t, tt.remote, src.Address)
				assert.Equal(t, tt.wantOrigin, src.Origin)
				assert.Equal(t, tt.wantOrigin, src.MessageTargetOrigin())
			} else {
				assert.NotEqual(t, entity.ContentSourceRemote, src.Kind)
			}
		})
	}
}

func TestResolveLocalServed(t *testing.T) {
	started := 0
	factory := func() (string, error) {
		started++
		return "http://127.0.0.1:54321", nil
	}

	src := Resolve("", true, factory, _bundled)
	assert.Equal(t, entity.ContentSourceLocalServed, src.Kind)
	assert.Equal(t, "http://127.0.0.1:54321/index.html", src.Address)
	assert.Equal(t, "http://127.0.0.1:54321", src.Origin)
	assert.Equal(t, "http://127.0.0.1:54321", src.MessageTargetOrigin())
	assert.Equal(t, 1, started)
}

func TestResolveLocalServedNotAttemptedWhenHTTPDisallowed(t *testing.T) {
	factory := func() (string, error) {
		t.Fatal("server must not be started when allowHttp is false")
		return "", nil
	}

	src := Resolve("http://insecure.example", false, factory, _bundled)
	assert.Equal(t, entity.ContentSourceLocalBundled, src.Kind)
	assert.Equal(t, _bundled, src.Address)
	assert.Equal(t, entity.MessageTargetWildcard, src.MessageTargetOrigin())
}

func TestResolveServerFailureDegradesToBundled(t *testing.T) {
	factory := func() (string, error) {
		return "", errors.New("bind: address already in use")
	}

	src := Resolve("", true, factory, _bundled)
	assert.Equal(t, entity.ContentSourceLocalBundled, src.Kind)
	assert.Equal(t, _bundled, src.Address)
	assert.Empty(t, src.Origin)
}

func TestResolveRemoteSkipsLocalServer(t *testing.T) {
	factory := func() (string, error) {
		t.Fatal("server must not be started when a secure remote is configured")
		return "", nil
	}

	src := Resolve("https://ex.com/app", true, factory, _bundled)
	assert.Equal(t, entity.ContentSourceRemote, src.Kind)
}
