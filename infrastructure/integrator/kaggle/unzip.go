package kaggle

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// unzip extrai o arquivo em destDir e retorna os caminhos extraídos.
// Entradas que escapam de destDir são rejeitadas.
func unzip(r io.ReaderAt, size int64, destDir string) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo zip")
	}

	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		target := filepath.Join(root, f.Name)
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return nil, errors.Errorf("entrada inválida no zip: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, err
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return nil, errors.Wrapf(err, "erro ao extrair %s", f.Name)
		}
		files = append(files, filepath.Join(destDir, f.Name))
	}

	return files, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}
