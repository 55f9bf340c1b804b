package entity

import (
	"encoding/json"

	"github.com/gofrs/uuid"
)

// CreatePanelParams are the parameters for opening a new presentation surface in the IDE.
type CreatePanelParams struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// CreatePanelResult carries the host-assigned identifier of a newly created panel.
type CreatePanelResult struct {
	PanelID uuid.UUID `json:"panelId"`
}

// PanelParams reference an existing panel by its host-assigned identifier.
type PanelParams struct {
	PanelID uuid.UUID `json:"panelId"`
}

// SetPanelContentParams replace the HTML shell of an existing panel.
type SetPanelContentParams struct {
	PanelID uuid.UUID `json:"panelId"`
	HTML    string    `json:"html"`
}

// PostMessageParams deliver a message to a panel's content for relay into the frame.
type PostMessageParams struct {
	PanelID uuid.UUID       `json:"panelId"`
	Message json.RawMessage `json:"message"`
}

// PanelClosedParams are sent by the host when a presentation surface has been disposed.
type PanelClosedParams struct {
	PanelID uuid.UUID `json:"panelId"`
}
