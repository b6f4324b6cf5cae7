package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded listing photos under a single upload root on disk.
type Store struct {
	dir string
}

// NewStore creates the upload root if needed. It runs once at startup.
func NewStore(dir string) (*Store, error) {
	clean := filepath.Clean(dir)
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %s: %w", clean, err)
	}
	return &Store{dir: clean}, nil
}

// FileSystem serves stored photos. Directories, the upload root included,
// are reported as missing so their contents are never listed.
func (s *Store) FileSystem() http.FileSystem {
	return filesOnly{http.Dir(s.dir)}
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

// Root is the prefix every stored path starts with, e.g. "public/".
func (s *Store) Root() string {
	return filepath.ToSlash(s.dir) + "/"
}

// SaveAll stores every file and returns the stored paths in upload order.
// If one file fails the ones already written are removed.
func (s *Store) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.save(fh)
		if err != nil {
			s.Remove(paths)
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Remove deletes previously stored files, e.g. when the listing they were
// uploaded for was rejected.
func (s *Store) Remove(paths []string) {
	for _, p := range paths {
		if err := os.Remove(filepath.FromSlash(p)); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove uploaded file %s: %v", p, err)
		}
	}
}

func (s *Store) save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("error opening upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	name := uuid.NewString() + "-" + sanitizeName(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("error creating file for %s: %w", fh.Filename, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("error writing %s: %w", fh.Filename, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("error writing %s: %w", fh.Filename, err)
	}

	return s.Root() + name, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == "/" || name == "" {
		return "photo"
	}
	return name
}
