package previewdaemon

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/yaml-preview/src/preview/controller/preview/previewmock"
	"github.com/uber/yaml-preview/src/preview/entity"
	"github.com/uber/yaml-preview/src/preview/factory"
	"github.com/uber/yaml-preview/src/preview/gateway/ide-client/ideclientmock"
	"github.com/uber/yaml-preview/src/preview/internal/errors"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestExecuteCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("open preview command", func(t *testing.T) {
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().OpenPreview(gomock.Any(), protocol.TextDocumentIdentifier{URI: "file:///workspace/config.yaml"}).Return(nil)

		c := controller{
			logger:  zap.NewNop().Sugar(),
			preview: mockPreview,
		}

		result, err := c.ExecuteCommand(context.Background(), &protocol.ExecuteCommandParams{
			Command:   CommandOpenPreview,
			Arguments: []interface{}{"file:///workspace/config.yaml"},
		})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("open preview without document argument", func(t *testing.T) {
		mockGateway := ideclientmock.NewMockGateway(ctrl)
		mockGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Eq(&protocol.ShowMessageParams{
			Type:    protocol.MessageTypeWarning,
			Message: _msgNoActiveDocument,
		})).Return(nil)

		c := controller{
			logger:     zap.NewNop().Sugar(),
			ideGateway: mockGateway,
		}

		_, err := c.ExecuteCommand(context.Background(), &protocol.ExecuteCommandParams{
			Command: CommandOpenPreview,
		})
		var noDoc *errors.NoActiveDocumentError
		assert.True(t, stderrors.As(err, &noDoc))
	})

	t.Run("open preview failure", func(t *testing.T) {
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().OpenPreview(gomock.Any(), gomock.Any()).Return(stderrors.New("sample"))

		c := controller{
			logger:  zap.NewNop().Sugar(),
			preview: mockPreview,
		}

		_, err := c.ExecuteCommand(context.Background(), &protocol.ExecuteCommandParams{
			Command:   CommandOpenPreview,
			Arguments: []interface{}{"file:///workspace/config.yaml"},
		})
		assert.Error(t, err)
	})

	t.Run("unsupported command", func(t *testing.T) {
		c := controller{
			logger: zap.NewNop().Sugar(),
		}

		_, err := c.ExecuteCommand(context.Background(), &protocol.ExecuteCommandParams{
			Command: "yaml.preview.unknown",
		})
		assert.ErrorContains(t, err, "unsupported command")
	})
}

func TestPanelClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	params := &entity.PanelClosedParams{
		PanelID: factory.UUID(),
	}

	t.Run("forwarded to preview controller", func(t *testing.T) {
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().PanelClosed(gomock.Any(), params).Return(nil)

		c := controller{
			logger:  zap.NewNop().Sugar(),
			preview: mockPreview,
		}
		assert.NoError(t, c.PanelClosed(context.Background(), params))
	})

	t.Run("failure returned", func(t *testing.T) {
		mockPreview := previewmock.NewMockController(ctrl)
		mockPreview.EXPECT().PanelClosed(gomock.Any(), params).Return(stderrors.New("sample"))

		c := controller{
			logger:  zap.NewNop().Sugar(),
			preview: mockPreview,
		}
		assert.Error(t, c.PanelClosed(context.Background(), params))
	})
}
