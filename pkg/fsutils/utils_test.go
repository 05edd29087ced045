package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
}

func TestReadJSONFile(t *testing.T) {
	type A struct {
		B string
	}

	t.Run("empty_not_required", func(t *testing.T) {
		var a A
		err := ReadJSONFile("", false, &a)
		assert.NoError(t, err)
	})

	t.Run("not_found_not_required", func(t *testing.T) {
		var a A
		err := ReadJSONFile("non_existent.json", false, &a)
		assert.NoError(t, err)
	})

	t.Run("not_found_required", func(t *testing.T) {
		var a A
		err := ReadJSONFile("non_existent.json", true, &a)
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "test*.json")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()

		_, err = tmpFile.WriteString(`{"B": "test"}`)
		assert.NoError(t, err)
		err = tmpFile.Close()
		assert.NoError(t, err)

		var a A
		err = ReadJSONFile(tmpFile.Name(), true, &a)
		assert.NoError(t, err)
		assert.Equal(t, "test", a.B)
	})

	t.Run("invalid_json", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "test*.json")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()

		_, err = tmpFile.WriteString(`{invalid}`)
		assert.NoError(t, err)
		err = tmpFile.Close()
		assert.NoError(t, err)

		var a A
		err = ReadJSONFile(tmpFile.Name(), true, &a)
		assert.Error(t, err)
	})

	t.Run("fail_to_close", func(t *testing.T) {
		// This is just to cover the defer close logic, though it's hard to make it fail and see the log
		tmpFile, err := os.CreateTemp("", "test*.json")
		assert.NoError(t, err)
		defer func() {
			_ = os.Remove(tmpFile.Name())
		}()
		_, _ = tmpFile.WriteString(`{}`)
		_ = tmpFile.Close()

		var a A
		_ = ReadJSONFile(tmpFile.Name(), true, &a)
	})
}

type mockDecoder struct {
	err error
}

func (m mockDecoder) Decode(interface{}) error {
	return m.err
}

func TestReadFile_DecoderError(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.json")
	assert.NoError(t, err)
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()

	err = ReadFile(tmpFile.Name(), true, nil, func(r io.Reader) Decoder {
		return mockDecoder{err: io.EOF}
	})
	assert.Error(t, err)
}

func TestWriteJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "state.json")

	type A struct {
		B string `json:"b"`
	}
	err := WriteJSONFile(filePath, A{B: "value"})
	assert.NoError(t, err)

	var a A
	err = ReadJSONFile(filePath, true, &a)
	assert.NoError(t, err)
	assert.Equal(t, "value", a.B)

	err = WriteJSONFile(filepath.Join(tmpDir, "missing", "state.json"), A{})
	assert.Error(t, err)

	err = WriteJSONFile(filePath, func() {})
	assert.Error(t, err)
}

func TestReadJSONFile_EmptyFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "empty.json")
	assert.NoError(t, os.WriteFile(filePath, nil, 0644))

	var a struct{}
	assert.NoError(t, ReadJSONFile(filePath, false, &a))
	assert.Error(t, ReadJSONFile(filePath, true, &a))
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "lock")
	assert.False(t, FileExists(""))
	assert.False(t, FileExists(filePath))
	assert.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	assert.True(t, FileExists(filePath))
	assert.True(t, FileExists(tmpDir))
}
