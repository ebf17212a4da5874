package files

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ImageStorage сохраняет загруженную картинку и возвращает ее
// относительный путь для записи в пост.
type ImageStorage interface {
	SaveImage(filename string, r io.Reader) (string, error)
}

type DiskImageStorage struct {
	root string
}

func NewDiskImageStorage(root string) *DiskImageStorage {
	return &DiskImageStorage{root: root}
}

func (s *DiskImageStorage) SaveImage(filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create media directory: %w", err)
	}

	// uuid в имени исключает коллизии одинаковых имен файлов
	rel := filepath.Join("posts", uuid.New().String()+"_"+filepath.Base(filename))

	f, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("could not create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("could not write image file: %w", err)
	}

	return rel, nil
}

// MemoryImageStorage хранит картинки в памяти (для тестов).
type MemoryImageStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemoryImageStorage() *MemoryImageStorage {
	return &MemoryImageStorage{files: make(map[string][]byte)}
}

func (s *MemoryImageStorage) SaveImage(filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("could not read image: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rel := filepath.Join("posts", uuid.New().String()+"_"+filepath.Base(filename))
	s.files[rel] = buf.Bytes()
	return rel, nil
}

// GetImage возвращает сохраненные байты (для проверок в тестах).
func (s *MemoryImageStorage) GetImage(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[path]
	return data, ok
}
