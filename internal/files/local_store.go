package files

import (
	"bytes"
	"fmt"
	img "image"

	"github.com/spf13/afero"

	"lazyimage/internal/image"
)

// LocalStore reads and writes cached images at caller-owned paths.
// Writes are not locked; concurrent saves to one path race.
type LocalStore struct {
	fs afero.Fs
}

func NewLocalStore(fs afero.Fs) *LocalStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &LocalStore{fs: fs}
}

func (s *LocalStore) Load(path string) (img.Image, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	decoded, _, err := image.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cached file %s: %w", path, err)
	}
	return decoded, nil
}

// Save re-encodes decoded as max-quality JPEG and overwrites path.
// Encoding happens in memory so a failed encode leaves the old file intact.
func (s *LocalStore) Save(path string, decoded img.Image) (int, error) {
	var buf bytes.Buffer
	if err := image.EncodeJPEG(&buf, decoded); err != nil {
		return 0, fmt.Errorf("encode jpeg: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return buf.Len(), nil
}

func (s *LocalStore) Exists(path string) bool {
	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates dir and its parents.
func (s *LocalStore) EnsureDir(dir string) error {
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	return nil
}
