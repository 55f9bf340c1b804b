package mapper

import (
	"encoding/json"
	"path"

	"github.com/uber/yaml-preview/src/preview/entity"
	"go.lsp.dev/protocol"
)

// MessageTypeYAMLUpdate is the type discriminator on every outbound snapshot message.
const MessageTypeYAMLUpdate = "yaml:update"

// PreviewMessage is the wire shape delivered to the content frame.
type PreviewMessage struct {
	Type    string          `json:"type"`
	Payload SnapshotPayload `json:"payload"`
}

// SnapshotPayload carries the full document state for a single update.
type SnapshotPayload struct {
	YAML       string `json:"yaml"`
	URI        string `json:"uri"`
	FileName   string `json:"fileName"`
	LanguageID string `json:"languageId"`
	Version    int32  `json:"version"`
}

// DocumentToSnapshot builds a ChangeSnapshot from the current state of a tracked document.
func DocumentToSnapshot(doc protocol.TextDocumentItem) entity.ChangeSnapshot {
	_, fileName := path.Split(doc.URI.Filename())
	return entity.ChangeSnapshot{
		Text:       doc.Text,
		URI:        doc.URI,
		FileName:   fileName,
		LanguageID: string(doc.LanguageID),
		Version:    doc.Version,
	}
}

// SnapshotToMessage maps a ChangeSnapshot to its serialized wire message.
func SnapshotToMessage(s entity.ChangeSnapshot) (json.RawMessage, error) {
	msg := PreviewMessage{
		Type: MessageTypeYAMLUpdate,
		Payload: SnapshotPayload{
			YAML:       s.Text,
			URI:        string(s.URI),
			FileName:   s.FileName,
			LanguageID: s.LanguageID,
			Version:    s.Version,
		},
	}
	return json.Marshal(msg)
}
