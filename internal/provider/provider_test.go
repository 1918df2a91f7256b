package provider

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/image-browser/internal/config"
)

func writeImage(t *testing.T, path string, width int, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	require.NoError(t, imaging.Save(img, path, imaging.JPEGQuality(90)))
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_FiltersByExtension(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.JPG"), 200, 100)
	writeImage(t, filepath.Join(dir, "b.jpg"), 10, 10)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not an image")

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)

	a.Equal(1, p.Count())
	a.Equal("a.JPG", p.NameAt(0))
	a.Equal(dir, p.Dir())

	bounds := p.BitmapAt(0).Bounds()
	a.Equal(200, bounds.Dx())
	a.Equal(100, bounds.Dy())
}

func TestLoad_SkipsSubdirectories(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "top.JPG"), 20, 20)
	sub := filepath.Join(dir, "nested")
	r.NoError(os.Mkdir(sub, 0o755))
	writeImage(t, filepath.Join(sub, "inner.JPG"), 20, 20)
	// A directory whose name carries the extension is not a file
	r.NoError(os.Mkdir(filepath.Join(dir, "folder.JPG"), 0o755))

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)

	a.Equal(1, p.Count())
	a.Equal("top.JPG", p.NameAt(0))
}

func TestLoad_AllNamesPresent(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	expected := []string{"one.JPG", "two.JPG", "three.JPG", "with space.JPG"}
	for _, name := range expected {
		writeImage(t, filepath.Join(dir, name), 30, 40)
	}

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)
	r.Equal(len(expected), p.Count())

	// Directory order is platform defined
	var names []string
	for i := 0; i < p.Count(); i++ {
		names = append(names, p.NameAt(i))
	}
	sort.Strings(names)
	sort.Strings(expected)
	a.Equal(expected, names)
}

func TestLoad_KeepsDirectoryOrder(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	for _, name := range []string{"m.JPG", "c.JPG", "x.JPG", "a.JPG", "skip.png", "q.JPG"} {
		writeImage(t, filepath.Join(dir, name), 8, 8)
	}

	f, err := os.Open(dir)
	r.NoError(err)
	raw, err := f.ReadDir(-1)
	r.NoError(f.Close())
	r.NoError(err)
	var expected []string
	for _, entry := range raw {
		if filepath.Ext(entry.Name()) == ".JPG" {
			expected = append(expected, entry.Name())
		}
	}

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)

	var names []string
	for i := 0; i < p.Count(); i++ {
		names = append(names, p.NameAt(i))
	}
	assert.Equal(t, expected, names)
}

func TestLoad_Thumbnails(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "wide.JPG"), 400, 200)
	writeImage(t, filepath.Join(dir, "tiny.JPG"), 40, 20)

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)
	r.Equal(2, p.Count())

	for i := 0; i < p.Count(); i++ {
		full := p.BitmapAt(i).Bounds()
		thumb := p.ThumbnailAt(i).Bounds()
		switch p.NameAt(i) {
		case "wide.JPG":
			a.Equal(400, full.Dx())
			a.Equal(100, thumb.Dx())
			a.Equal(50, thumb.Dy())
		case "tiny.JPG":
			a.Equal(40, thumb.Dx())
			a.Equal(20, thumb.Dy())
		}
	}
}

func TestProvider_ThumbnailFallsBackToBitmap(t *testing.T) {
	bitmap := image.NewRGBA(image.Rect(0, 0, 2, 2))
	p := New("dir", []Entry{{Name: "a.JPG", Bitmap: bitmap}})

	assert.Same(t, bitmap, p.ThumbnailAt(0))
}

func TestLoad_FollowsSymlinks(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "target.jpeg")
	writeImage(t, target, 10, 10)
	if err := os.Symlink(target, filepath.Join(dir, "link.JPG")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	r.NoError(os.Symlink(t.TempDir(), filepath.Join(dir, "dirlink.JPG")))

	p, err := NewDirectoryLoader(nil).Load(dir)
	r.NoError(err)

	a.Equal(1, p.Count())
	a.Equal("link.JPG", p.NameAt(0))
}

func TestLoad_EmptyDirectory(t *testing.T) {
	p, err := NewDirectoryLoader(nil).Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 0, p.Count())
}

func TestLoad_DecodeFailureIsAtomic(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "good.JPG"), 10, 10)
	writeFile(t, filepath.Join(dir, "broken.JPG"), "this is not a jpeg")

	p, err := NewDirectoryLoader(nil).Load(dir)

	a.Nil(p)
	var decodeErr *DecodeError
	if a.True(errors.As(err, &decodeErr)) {
		a.Equal("broken.JPG", decodeErr.Name)
		a.NotNil(errors.Unwrap(decodeErr))
	}
	a.Contains(err.Error(), "broken.JPG")
}

func TestLoad_InvalidPaths(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.JPG")
	writeImage(t, file, 10, 10)

	tests := []struct {
		name string
		path string
	}{
		{name: "Empty", path: ""},
		{name: "Missing", path: filepath.Join(t.TempDir(), "missing")},
		{name: "NotADirectory", path: file},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDirectoryLoader(nil).Load(tt.path)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestLoad_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.JPG"), 10, 10)
	writeImage(t, filepath.Join(dir, "b.jpg"), 10, 10)

	cfg := config.DefaultConfig()
	cfg.Extension = ".jpg"
	p, err := NewDirectoryLoader(cfg).Load(dir)

	require.NoError(t, err)
	require.Equal(t, 1, p.Count())
	assert.Equal(t, "b.jpg", p.NameAt(0))
}

func TestProvider_OutOfRangePanics(t *testing.T) {
	p := New("dir", []Entry{{Name: "a.JPG", Bitmap: image.NewRGBA(image.Rect(0, 0, 1, 1))}})

	assert.Equal(t, "a.JPG", p.NameAt(0))
	assert.Panics(t, func() { p.NameAt(1) })
	assert.Panics(t, func() { p.NameAt(-1) })
	assert.Panics(t, func() { p.BitmapAt(1) })
	assert.Panics(t, func() { p.ThumbnailAt(1) })
}
