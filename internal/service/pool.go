package service

import "github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"

// BuildPool returns the deduplicated union of the codes of all active presets.
// Presets are visited in the given order and a code keeps the position of its first occurrence.
func BuildPool(presets []entities.Preset, active map[string]bool) []string {
	seen := make(map[string]struct{})
	pool := make([]string, 0)

	for _, p := range presets {
		if !active[p.Name] {
			continue
		}
		for _, code := range p.Codes {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			pool = append(pool, code)
		}
	}

	return pool
}
