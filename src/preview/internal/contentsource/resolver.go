// Package contentsource decides what the preview's content frame loads.
//
// Resolution order is security sensitive and evaluated strictly top to bottom:
// a syntactically valid https remote wins; otherwise a loopback server is
// attempted when plain http is permitted; anything else degrades to the
// bundled page under the host's resource namespace. Insecure remote addresses
// are never loaded directly, since that would extend the isolation boundary to
// an untrusted plaintext origin.
package contentsource

import (
	"net/url"

	"github.com/uber/yaml-preview/src/preview/entity"
)

// _secureScheme is the only transport scheme trusted for remote preview endpoints.
const _secureScheme = "https"

// IndexPath is the canonical path for the locally served fallback page.
const IndexPath = "/index.html"

// LocalServerFactory starts a loopback server and returns its base URL ("http://127.0.0.1:PORT").
type LocalServerFactory func() (string, error)

// Resolve picks the content source for a new preview session.
//
// A malformed remote URL is treated as absent and never raises. Local server
// start failure falls through to the bundled source so that opening a preview
// cannot be aborted by a port bind error.
func Resolve(configuredRemote string, allowHTTP bool, startLocal LocalServerFactory, bundledAddress string) entity.ContentSource {
	if origin, ok := secureRemoteOrigin(configuredRemote); ok {
		return entity.ContentSource{
			Kind:    entity.ContentSourceRemote,
			Address: configuredRemote,
			Origin:  origin,
		}
	}

	if allowHTTP && startLocal != nil {
		if base, err := startLocal(); err == nil {
			return entity.ContentSource{
				Kind:    entity.ContentSourceLocalServed,
				Address: base + IndexPath,
				Origin:  base,
			}
		}
	}

	return entity.ContentSource{
		Kind:    entity.ContentSourceLocalBundled,
		Address: bundledAddress,
	}
}

// secureRemoteOrigin returns the origin of a configured remote address,
// accepting only well-formed URLs on the secure transport scheme.
func secureRemoteOrigin(configuredRemote string) (string, bool) {
	if configuredRemote == "" {
		return "", false
	}

	u, err := url.Parse(configuredRemote)
	if err != nil || u.Scheme != _secureScheme || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}
