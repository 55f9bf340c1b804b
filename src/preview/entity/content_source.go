package entity

// ContentSourceKind identifies which resolution tier produced a ContentSource.
type ContentSourceKind int

const (
	// ContentSourceRemote loads a trusted https endpoint directly in the frame.
	ContentSourceRemote ContentSourceKind = iota
	// ContentSourceLocalServed loads the bundled page through a loopback server owned by the session.
	ContentSourceLocalServed
	// ContentSourceLocalBundled loads the bundled page through the host's resource namespace.
	ContentSourceLocalBundled
)

// MessageTargetWildcard is the target origin used when the frame's effective
// origin cannot be enumerated ahead of time.
const MessageTargetWildcard = "*"

// ContentSource describes what the content frame loads and which origin it runs under.
// It is resolved once per preview session and never changes for the session's lifetime.
type ContentSource struct {
	Kind ContentSourceKind

	// Address is the location loaded into the content frame.
	Address string

	// Origin is the network origin of Address. Empty for LocalBundled sources,
	// whose effective origin is not enumerable.
	Origin string
}

// MessageTargetOrigin returns the origin that snapshot messages are pinned to.
// A concrete origin is always preferred; only bundled sources fall back to the wildcard.
func (s ContentSource) MessageTargetOrigin() string {
	if s.Kind == ContentSourceLocalBundled || s.Origin == "" {
		return MessageTargetWildcard
	}
	return s.Origin
}

// String implements fmt.Stringer.
func (k ContentSourceKind) String() string {
	switch k {
	case ContentSourceRemote:
		return "remote"
	case ContentSourceLocalServed:
		return "local-served"
	case ContentSourceLocalBundled:
		return "local-bundled"
	}
	return "unknown"
}
