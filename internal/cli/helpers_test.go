package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmHonorsYesFlag(t *testing.T) {
	SetGlobalFlags(false, false, true)
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	ok, err := Confirm("Delete product", false)
	require.NoError(t, err)
	assert.True(t, ok, "--yes answers every prompt without reading stdin")
}

func TestStatusPrefix(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		want    string
	}{
		{name: "symbol by default", noColor: false, want: "✓ saved 3 products\n"},
		{name: "plain label with no-color", noColor: true, want: "OK: saved 3 products\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetGlobalFlags(false, tt.noColor, false)
			t.Cleanup(func() { SetGlobalFlags(false, false, false) })

			path := filepath.Join(t.TempDir(), "out")
			f, err := os.Create(path)
			require.NoError(t, err)

			status(f, "✓", "OK:", "saved %d products", 3)
			require.NoError(t, f.Close())

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
