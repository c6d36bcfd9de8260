package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagRepository_Resolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cu.png"), []byte("png"), 0o600))

	tests := []struct {
		name     string
		template string
		code     string
		wantPath string
		wantURL  string
		wantErr  error
	}{
		{name: "local file", template: "https://cdn/%s.png", code: "cu", wantPath: filepath.Join(dir, "cu.png")},
		{name: "url fallback", template: "https://cdn/%s.png", code: "jp", wantURL: "https://cdn/jp.png"},
		{name: "no fallback", code: "jp", wantErr: ErrFlagNotFound},
		{name: "path traversal", template: "https://cdn/%s.png", code: "../cu", wantErr: ErrFlagNotFound},
		{name: "empty code", template: "https://cdn/%s.png", code: "", wantErr: ErrFlagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFlagRepository(dir, tt.template)

			flag, err := repo.Resolve(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.code, flag.Code)
			assert.Equal(t, tt.wantPath, flag.Path)
			assert.Equal(t, tt.wantURL, flag.URL)
		})
	}
}

func TestFlagRepository_Missing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cu.png"), []byte("png"), 0o600))

	repo := NewFlagRepository(dir, "")

	assert.Equal(t, []string{"jp", "de"}, repo.Missing([]string{"cu", "jp", "de"}))
	assert.Empty(t, NewFlagRepository(dir, "https://cdn/%s.png").Missing([]string{"cu", "jp"}))
}
