package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// FlagRepository locates flag images by country code.
// Local files win over the URL template.
type FlagRepository struct {
	dir         string
	urlTemplate string
}

// NewFlagRepository creates a repository looking for <dir>/<code>.png and
// falling back to urlTemplate, a fmt pattern with one %s for the code.
func NewFlagRepository(dir, urlTemplate string) *FlagRepository {
	return &FlagRepository{
		dir:         dir,
		urlTemplate: urlTemplate,
	}
}

// Dir returns the local flag directory.
func (r *FlagRepository) Dir() string {
	return r.dir
}

// Resolve returns the flag for a code or ErrFlagNotFound.
func (r *FlagRepository) Resolve(code string) (entities.Flag, error) {
	if code == "" || strings.ContainsAny(code, `/\.`) {
		return entities.Flag{}, fmt.Errorf("flag %q: %w", code, ErrFlagNotFound)
	}

	if r.dir != "" {
		path := filepath.Join(r.dir, code+".png")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return entities.Flag{Code: code, Path: path}, nil
		}
	}

	if r.urlTemplate != "" {
		return entities.Flag{Code: code, URL: fmt.Sprintf(r.urlTemplate, code)}, nil
	}

	return entities.Flag{}, fmt.Errorf("flag %q: %w", code, ErrFlagNotFound)
}

// Missing returns the codes that have no flag.
func (r *FlagRepository) Missing(codes []string) []string {
	var missing []string
	for _, code := range codes {
		if _, err := r.Resolve(code); err != nil {
			missing = append(missing, code)
		}
	}
	return missing
}
