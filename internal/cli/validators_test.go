package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/catalog"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: "42", want: 42},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrice(t *testing.T) {
	got, err := ParsePrice("299.50")
	require.NoError(t, err)
	assert.InDelta(t, 299.5, float64(got), 0.001)

	_, err = ParsePrice("-1")
	assert.Error(t, err)
	_, err = ParsePrice("free")
	assert.Error(t, err)
}

func TestValidateSortKey(t *testing.T) {
	for _, key := range catalog.ValidSortKeys {
		got, err := ValidateSortKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}

	_, err := ValidateSortKey("alphabetical")
	assert.Error(t, err)
}

func TestValidateImagePath(t *testing.T) {
	t.Run("empty path is fine", func(t *testing.T) {
		assert.NoError(t, ValidateImagePath(""))
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0644))
		assert.NoError(t, ValidateImagePath(path))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, ValidateImagePath(filepath.Join(t.TempDir(), "nope.jpg")))
	})

	t.Run("directory", func(t *testing.T) {
		assert.Error(t, ValidateImagePath(t.TempDir()))
	})
}
