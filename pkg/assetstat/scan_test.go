package assetstat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string]int) {
	t.Helper()
	for name, size := range files {
		dir := filepath.Dir(name)
		require.NoError(t, fs.MkdirAll(dir, 0o755))
		require.NoError(t, afero.WriteFile(fs, name, make([]byte, size), 0o644))
	}
}

func TestScan_GroupsByLowercasedExtension(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"Assets/a.png": 100,
		"Assets/b.PNG": 50,
		"Assets/c.txt": 10,
	})

	result, err := Scan(fs, "Assets")
	require.NoError(t, err)

	assert.Len(t, result.Buckets, 2)
	png := result.Bucket(".png")
	require.NotNil(t, png)
	assert.Equal(t, 2, png.Count())
	assert.Equal(t, int64(150), png.TotalSize)
	txt := result.Bucket(".txt")
	require.NotNil(t, txt)
	assert.Equal(t, 1, txt.Count())
	assert.Equal(t, int64(10), txt.TotalSize)
	assert.Equal(t, int64(160), result.TotalSize)
	assert.Equal(t, 3, result.TotalCount())
	assert.NoError(t, result.Verify())
}

func TestScan_EmptyRoot(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("Assets", 0o755))

	result, err := Scan(fs, "Assets")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.Empty(t, result.Buckets)
	assert.Equal(t, int64(0), result.TotalSize)
	assert.Empty(t, result.SortedBuckets())
}

func TestScan_ExcludesMetaFiles(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"Assets/a.png":      100,
		"Assets/a.png.meta": 7,
		"Assets/Sub.META":   3,
	})

	result, err := Scan(fs, "Assets")
	require.NoError(t, err)
	assert.Len(t, result.Buckets, 1)
	assert.Nil(t, result.Bucket(".meta"))
	assert.Equal(t, int64(100), result.TotalSize)
}

func TestScan_CustomExcluder(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"Assets/a.png":      1,
		"Assets/a.png.meta": 2,
		"Assets/b.tmp":      4,
	})

	t.Run("suffixes", func(t *testing.T) {
		result, err := Scan(fs, "Assets", WithExcludedSuffixes(".tmp"))
		require.NoError(t, err)
		assert.NotNil(t, result.Bucket(".meta"))
		assert.Nil(t, result.Bucket(".tmp"))
		assert.Equal(t, int64(3), result.TotalSize)
	})

	t.Run("predicate", func(t *testing.T) {
		result, err := Scan(fs, "Assets", WithExcluder(func(_ string, info os.FileInfo) bool {
			return info.Size() < 2
		}))
		require.NoError(t, err)
		assert.Nil(t, result.Bucket(".png"))
		assert.Equal(t, int64(6), result.TotalSize)
	})

	t.Run("nil_predicate_keeps_everything", func(t *testing.T) {
		result, err := Scan(fs, "Assets", WithExcluder(nil))
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount())
	})
}

func TestScan_Recursive(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"Assets/Textures/hero.png":        30,
		"Assets/Textures/UI/button.png":   20,
		"Assets/Scripts/Player.cs":        5,
		"Assets/Scripts/Editor/README":    2,
		"Assets/Scripts/Editor/.gitkeep":  1,
		"Assets/Scripts/Editor/tool.cs":   3,
		"Assets/Scripts/Editor/tool.meta": 9,
	})

	result, err := Scan(fs, "Assets")
	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalCount())
	assert.Equal(t, int64(61), result.TotalSize)
	assert.Equal(t, 1, result.Bucket("").Count())
	assert.Equal(t, 1, result.Bucket(".gitkeep").Count())
	assert.Equal(t, "Assets/Textures/UI/button.png", result.Bucket(".png").FilesBySize()[1].Path)
	assert.NoError(t, result.Verify())
}

func TestScan_InvalidRoot(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{"Assets/file.txt": 1})

	t.Run("missing", func(t *testing.T) {
		result, err := Scan(fs, "Missing")
		assert.Nil(t, result)
		var rootErr *InvalidRootError
		require.ErrorAs(t, err, &rootErr)
		assert.Equal(t, "Missing", rootErr.Root)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("not_a_directory", func(t *testing.T) {
		result, err := Scan(fs, "Assets/file.txt")
		assert.Nil(t, result)
		var rootErr *InvalidRootError
		require.ErrorAs(t, err, &rootErr)
		assert.Nil(t, rootErr.Err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

type failingFs struct {
	afero.Fs
	failOpen string
	failStat string
}

var errDenied = errors.New("permission denied")

func (f failingFs) Open(name string) (afero.File, error) {
	if filepath.ToSlash(name) == f.failOpen {
		return nil, errDenied
	}
	return f.Fs.Open(name)
}

func (f failingFs) Stat(name string) (os.FileInfo, error) {
	if filepath.ToSlash(name) == f.failStat {
		return nil, errDenied
	}
	return f.Fs.Stat(name)
}

func TestScan_SkipsUnreadableEntries(t *testing.T) {
	t.Parallel()
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]int{
		"Assets/ok.png":         10,
		"Assets/broken.png":     20,
		"Assets/Locked/hid.txt": 30,
	})
	fs := failingFs{Fs: mem, failOpen: "Assets/Locked", failStat: "Assets/broken.png"}

	result, err := Scan(fs, "Assets")
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount())
	assert.Equal(t, int64(10), result.TotalSize)
	require.Len(t, result.Skipped, 2)
	var paths []string
	for _, skipped := range result.Skipped {
		assert.ErrorIs(t, skipped, errDenied)
		paths = append(paths, skipped.Path)
	}
	assert.ElementsMatch(t, []string{"Assets/Locked", "Assets/broken.png"}, paths)
}

func TestScan_StrictAbortsOnFirstFailure(t *testing.T) {
	t.Parallel()
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]int{
		"Assets/ok.png":     10,
		"Assets/broken.png": 20,
	})
	fs := failingFs{Fs: mem, failStat: "Assets/broken.png"}

	result, err := Scan(fs, "Assets", WithStrict(true))
	assert.Nil(t, result)
	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "Assets/broken.png", accessErr.Path)
}

func TestScan_CancelledContext(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{"Assets/a.png": 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Scan(fs, "Assets", WithContext(ctx))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_RescanIsIdempotent(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"Assets/a.png":   100,
		"Assets/b.PNG":   50,
		"Assets/c.txt":   10,
		"Assets/d/e.mat": 3,
	})

	first, err := Scan(fs, "Assets")
	require.NoError(t, err)
	second, err := Scan(fs, "Assets")
	require.NoError(t, err)

	assert.Equal(t, first.TotalSize, second.TotalSize)
	require.Len(t, second.Buckets, len(first.Buckets))
	for ext, b := range first.Buckets {
		assert.ElementsMatch(t, b.Files, second.Buckets[ext].Files, ext)
		assert.Equal(t, b.TotalSize, second.Buckets[ext].TotalSize, ext)
	}
}

func TestSuffixExcluder(t *testing.T) {
	t.Parallel()
	exclude := SuffixExcluder(".meta", " ", ".TMP")
	tests := []struct {
		path string
		want bool
	}{
		{"a.png", false},
		{"a.png.meta", true},
		{"A.PNG.META", true},
		{"scratch.tmp", true},
		{"meta", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, exclude(tt.path, nil))
		})
	}
}
