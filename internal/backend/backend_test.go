package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"fotogrid/internal/tagcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTagger struct {
	tags        []string
	description string
	err         error
	calls       int
}

func (s *stubTagger) GenerateTags(_ context.Context, _ string) ([]string, error) {
	s.calls++
	return s.tags, s.err
}

func (s *stubTagger) Describe(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.description, s.err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func openCache(t *testing.T) *tagcache.DB {
	t.Helper()
	c, err := tagcache.Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"image.PNG", true},
		{"image.jpg", true},
		{"image.jpeg", true},
		{"image.gif", true},
		{"image.webp", true},
		{"image.bmp", true},
		{"image.tiff", true},
		{"image.tif", true},
		{"image.svg", true},
		{"image.txt", false},
		{"image", false},
		{".jpeg", true},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsImage(test.name), "IsImage(%s)", test.name)
	}
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Zebra.jpg", "apple.PNG", "notes.txt", "middle.gif")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFiles(t, filepath.Join(dir, "sub"), "nested.jpg")

	svc := NewService(nil, &stubTagger{})
	entries, err := svc.ScanFolder(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 3, "non-images and subdirectories are skipped")

	// Sorted by lowercase name; ids are positional and unique.
	assert.Equal(t, "apple.PNG", entries[0].Name)
	assert.Equal(t, "middle.gif", entries[1].Name)
	assert.Equal(t, "Zebra.jpg", entries[2].Name)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("img_%d", i), e.ID)
		assert.Equal(t, filepath.Join(dir, e.Name), e.SourcePath)
	}
}

func TestScanFolderErrors(t *testing.T) {
	svc := NewService(nil, &stubTagger{})

	_, err := svc.ScanFolder(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.jpg")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = svc.ScanFolder(context.Background(), file)
	assert.Error(t, err)
}

func TestScanFolderRestoresCachedAnnotations(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpg")
	cache := openCache(t)
	require.NoError(t, cache.SetTags(filepath.Join(dir, "a.jpg"), []string{"cat", "pet"}))
	require.NoError(t, cache.SetDescription(filepath.Join(dir, "a.jpg"), "a cat"))

	svc := NewService(cache, &stubTagger{})
	entries, err := svc.ScanFolder(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"cat", "pet"}, entries[0].Tags)
	assert.Equal(t, "a cat", entries[0].Description)
	assert.Empty(t, entries[1].Tags)
}

func TestGenerateTagsPersists(t *testing.T) {
	cache := openCache(t)
	tagger := &stubTagger{tags: []string{"outdoor", "sunset"}}
	svc := NewService(cache, tagger)

	tags, err := svc.GenerateTags(context.Background(), "/pics/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"outdoor", "sunset"}, tags)
	assert.Equal(t, 1, tagger.calls)

	cached, err := cache.Tags("/pics/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"outdoor", "sunset"}, cached)
}

func TestGenerateTagsFailureDoesNotCache(t *testing.T) {
	cache := openCache(t)
	svc := NewService(cache, &stubTagger{err: fmt.Errorf("inference failed")})

	_, err := svc.GenerateTags(context.Background(), "/pics/b.jpg")
	assert.Error(t, err)
	cached, err := cache.Tags("/pics/b.jpg")
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestDescribePersists(t *testing.T) {
	cache := openCache(t)
	svc := NewService(cache, &stubTagger{description: "a beach at dusk"})

	description, err := svc.Describe(context.Background(), "/pics/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a beach at dusk", description)

	cached, err := cache.Description("/pics/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a beach at dusk", cached)
}

func TestParseTags(t *testing.T) {
	long := make([]byte, 60)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		raw      string
		expected []string
	}{
		{"nature, sunset, mountain", []string{"nature", "sunset", "mountain"}},
		{" Nature ,SUNSET", []string{"nature", "sunset"}},
		{"one,,  ,two", []string{"one", "two"}},
		{"tag, " + string(long), []string{"tag"}},
		{"", nil},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseTags(test.raw), "ParseTags(%q)", test.raw)
	}
}
