package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("write file %s: %v", p, err)
	}
	return p
}

func TestReadAll_TableDriven(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content []byte
		missing bool
		wantErr bool
	}{
		{"small", []byte("hello world"), false, false},
		{"binary with newlines", []byte{'\r', '\n', 0x00, 0xff, '\n'}, false, false},
		{"large", bytes.Repeat([]byte("A"), 2<<20+3), false, false},
		{"empty", []byte{}, false, false},
		{"file missing", nil, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.missing {
				path = filepath.Join(dir, "does-not-exist.bin")
			} else {
				path = writeFile(t, dir, tt.name+".bin", tt.content)
			}

			var progressed int64
			data, err := ReadAll(path, func(n int64) {
				progressed += n
			})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.content, data), "content mismatch")
			assert.Equal(t, int64(len(tt.content)), progressed)
		})
	}
}

func TestReadRange(t *testing.T) {
	content := []byte("0123456789")
	r := bytes.NewReader(content)
	buf := make([]byte, 8)

	t.Run("inside", func(t *testing.T) {
		var progressed int64
		got, err := ReadRange(r, 2, 5, buf, func(n int64) { progressed += n })
		require.NoError(t, err)
		assert.Equal(t, []byte("23456"), got)
		assert.Equal(t, int64(5), progressed)
	})

	t.Run("up to end", func(t *testing.T) {
		got, err := ReadRange(r, 6, 4, buf, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte("6789"), got)
	})

	t.Run("zero length", func(t *testing.T) {
		got, err := ReadRange(r, 3, 0, buf, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("past end", func(t *testing.T) {
		_, err := ReadRange(r, 8, 4, buf, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected EOF")
	})

	t.Run("negative start", func(t *testing.T) {
		_, err := ReadRange(r, -1, 4, buf, nil)
		require.Error(t, err)
	})

	t.Run("buffer too small", func(t *testing.T) {
		_, err := ReadRange(r, 0, 9, buf, nil)
		require.Error(t, err)
	})
}

func TestSizesAndCheckEqual(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bin", []byte{1, 2, 3, 4})
	b := writeFile(t, dir, "b.bin", []byte{4, 3, 2, 1})
	c := writeFile(t, dir, "c.bin", []byte{1, 2, 3, 4, 5})

	sizes, err := Sizes([]string{a, b, a})
	require.NoError(t, err)
	size, err := CheckEqual(sizes)
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)

	sizes, err = Sizes([]string{a, b, c})
	require.NoError(t, err)
	_, err = CheckEqual(sizes)
	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, "File lengths differ: 4 4 5", lm.Error())

	_, err = Sizes([]string{a, filepath.Join(dir, "missing.bin")})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
