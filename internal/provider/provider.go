package provider

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/Akaiko1/image-browser/internal/config"
)

// Entry is a decoded image together with its on-disk file name and a small copy for the grid.
// A nil Thumbnail falls back to the full bitmap.
type Entry struct {
	Name      string
	Bitmap    image.Image
	Thumbnail image.Image
}

// Provider is an ordered, indexable list of decoded images from one directory.
// It is built once per directory selection and never updated in place.
type Provider struct {
	dir     string
	entries []Entry
}

// New creates a Provider over already decoded entries.
func New(dir string, entries []Entry) *Provider {
	return &Provider{dir: dir, entries: entries}
}

// Dir returns the directory the provider was built from.
func (p *Provider) Dir() string {
	return p.dir
}

// Count returns the number of entries.
func (p *Provider) Count() int {
	return len(p.entries)
}

// NameAt returns the file name of entry i. It panics if i is out of range.
func (p *Provider) NameAt(i int) string {
	return p.entry(i).Name
}

// BitmapAt returns the full resolution image of entry i. It panics if i is out of range.
func (p *Provider) BitmapAt(i int) image.Image {
	return p.entry(i).Bitmap
}

// ThumbnailAt returns the icon sized image of entry i. It panics if i is out of range.
func (p *Provider) ThumbnailAt(i int) image.Image {
	e := p.entry(i)
	if e.Thumbnail == nil {
		return e.Bitmap
	}
	return e.Thumbnail
}

func (p *Provider) entry(i int) *Entry {
	if i < 0 || i >= len(p.entries) {
		panic(fmt.Sprintf("provider: index %d out of range [0, %d)", i, len(p.entries)))
	}
	return &p.entries[i]
}

// DecodeError reports an image file that could not be decoded.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("couldn't load image %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Loader defines the interface for building providers from directories.
type Loader interface {
	Load(dir string) (*Provider, error)
}

// DirectoryLoader implements Loader by eagerly decoding every matching file of a directory.
type DirectoryLoader struct {
	config *config.Config
}

// NewDirectoryLoader creates a new DirectoryLoader with the given configuration.
func NewDirectoryLoader(cfg *config.Config) *DirectoryLoader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &DirectoryLoader{
		config: cfg,
	}
}

// Load lists the direct children of dir, keeps the regular files ending with the configured
// extension and decodes them in directory order. Either every file decodes or no provider is returned.
func (l *DirectoryLoader) Load(dir string) (*Provider, error) {
	names, err := l.ImageNames(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Failed to decode %s: %v", name, err)
			return nil, &DecodeError{Name: name, Err: err}
		}
		entries = append(entries, Entry{Name: name, Bitmap: img, Thumbnail: l.thumbnail(img)})
	}

	log.Printf("Loaded %d images from %s", len(entries), dir)
	return New(dir, entries), nil
}

// ImageNames returns the names of the files in dir that Load would decode, in directory order.
func (l *DirectoryLoader) ImageNames(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer f.Close()

	// File.ReadDir keeps the order the file system returns, os.ReadDir would sort
	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var names []string
	for _, entry := range dirEntries {
		if !strings.HasSuffix(entry.Name(), l.config.Extension) {
			continue
		}
		if !isRegularFile(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// thumbnail scales img down to fit the icon square; smaller images are only copied.
func (l *DirectoryLoader) thumbnail(img image.Image) image.Image {
	size := int(l.config.IconSize)
	if size <= 0 {
		return nil
	}
	return imaging.Fit(img, size, size, imaging.Linear)
}

// isRegularFile reports whether entry is a regular file, following symbolic links.
func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return imaging.Decode(f)
}
