package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

//go:embed svg/*
var FS embed.FS

// CopyTo writes every embedded asset under dir, keeping relative paths.
func CopyTo(dir string) error {
	return fs.WalkDir(FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return errors.Wrapf(os.MkdirAll(target, 0o755), "mkdir %s", target)
		}
		data, err := FS.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read asset %s", path)
		}
		return errors.Wrapf(os.WriteFile(target, data, 0o644), "write %s", target)
	})
}
