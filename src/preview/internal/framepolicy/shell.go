package framepolicy

import (
	"bytes"
	"fmt"
	"html/template"
)

// The shell hosts the content frame and the single nonce-authorized relay
// script, which forwards inbound snapshot messages to the nested frame pinned
// to the policy's target origin. All interpolated values pass through
// html/template contextual escaping.
var _shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="Content-Security-Policy" content="{{.CSP}}">
<style nonce="{{.Nonce}}">
html, body, iframe { margin: 0; padding: 0; width: 100%; height: 100%; border: none; }
</style>
<title>{{.Title}}</title>
</head>
<body>
<iframe id="content" src="{{.FrameAddress}}" sandbox="allow-scripts allow-same-origin"></iframe>
<script nonce="{{.Nonce}}">
	const frame = document.getElementById('content');
	const target = {{.MessageTargetOrigin}};
	window.addEventListener('message', (event) => {
		frame.contentWindow.postMessage(event.data, target);
	});
</script>
</body>
</html>
`))

type shellData struct {
	Title string
	CSP   string
	Nonce string
	// FrameAddress is policy-derived (validated https remote, our own loopback
	// server, or the configured bundled resource), so it is exempted from URL
	// scheme filtering which would reject the host resource scheme.
	FrameAddress        template.URL
	MessageTargetOrigin string
}

// RenderShell produces the outer HTML document for a preview panel.
func (p Policy) RenderShell(title string) (string, error) {
	var buf bytes.Buffer
	err := _shellTemplate.Execute(&buf, shellData{
		Title:               title,
		CSP:                 p.ContentSecurityPolicy(),
		Nonce:               p.Nonce,
		FrameAddress:        template.URL(p.FrameAddress),
		MessageTargetOrigin: p.MessageTargetOrigin,
	})
	if err != nil {
		return "", fmt.Errorf("rendering preview shell: %w", err)
	}
	return buf.String(), nil
}
