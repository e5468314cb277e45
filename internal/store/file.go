// Package store persists the bot's state as whole-file JSON documents
// under a base directory. Every save rewrites the file in full through
// a temp-file rename, so a reader never observes a partial document.
package store

import (
	"os"
	"path/filepath"
)

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".velox-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
