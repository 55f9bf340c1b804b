package previewdaemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/yaml-preview/src/preview/controller/doc-state/docstatemock"
	"github.com/uber/yaml-preview/src/preview/controller/preview/previewmock"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDidOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	params := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        "file:///workspace/config.yaml",
			LanguageID: "yaml",
			Text:       "key: value\n",
		},
	}

	t.Run("success", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidOpen(gomock.Any(), params).Return(nil)

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
		}
		assert.NoError(t, c.DidOpen(context.Background(), params))
	})

	t.Run("tracking failure", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidOpen(gomock.Any(), params).Return(errors.New("sample"))

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
		}
		assert.Error(t, c.DidOpen(context.Background(), params))
	})
}

func TestDidChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	params := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///workspace/config.yaml"},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: "key: updated\n"},
		},
	}

	t.Run("change applied and preview scheduled", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidChange(gomock.Any(), params).Return(nil)
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().DocumentChanged(gomock.Any(), params).Return(nil)

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
			preview:  mockPreview,
		}
		assert.NoError(t, c.DidChange(context.Background(), params))
	})

	t.Run("change failure skips preview", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidChange(gomock.Any(), params).Return(errors.New("sample"))

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
		}
		assert.Error(t, c.DidChange(context.Background(), params))
	})

	t.Run("preview scheduling failure", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidChange(gomock.Any(), params).Return(nil)
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().DocumentChanged(gomock.Any(), params).Return(errors.New("sample"))

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
			preview:  mockPreview,
		}
		assert.Error(t, c.DidChange(context.Background(), params))
	})
}

func TestDidClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	params := &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///workspace/config.yaml"},
	}

	t.Run("success", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidClose(gomock.Any(), params).Return(nil)
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().DocumentClosed(gomock.Any(), params).Return(nil)

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
			preview:  mockPreview,
		}
		assert.NoError(t, c.DidClose(context.Background(), params))
	})

	t.Run("both failures combined", func(t *testing.T) {
		mockDocState := docstatemock.NewMockController(ctrl)
		mockDocState.EXPECT().DidClose(gomock.Any(), params).Return(errors.New("close"))
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().DocumentClosed(gomock.Any(), params).Return(errors.New("teardown"))

		c := controller{
			logger:   zap.NewNop().Sugar(),
			docState: mockDocState,
			preview:  mockPreview,
		}
		err := c.DidClose(context.Background(), params)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "close")
		assert.Contains(t, err.Error(), "teardown")
	})
}
