package fs

import (
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// PreviewFS wraps the filesystem operations used by yamlpreview-daemon.
type PreviewFS interface {
	FileExists(path string) (bool, error)
	MkdirAll(path string) error
	ReadFile(name string) ([]byte, error)
}

type fsImpl struct{}

// New creates a new PreviewFS.
func New() PreviewFS {
	return fsImpl{}
}

func (fsImpl) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
