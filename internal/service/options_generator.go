package service

// DefaultChoices is the number of options shown when the pool is large enough.
const DefaultChoices = 12

// OptionGenerator generates multiple choice options for a prompt.
type OptionGenerator struct {
	rnd     Rand
	choices int
}

// NewOptionGenerator creates a new option generator.
// A choice count below one is treated as one.
func NewOptionGenerator(rnd Rand, choices int) *OptionGenerator {
	if choices < 1 {
		choices = 1
	}
	return &OptionGenerator{
		rnd:     rnd,
		choices: choices,
	}
}

// ChoiceCount returns the option set size for a pool: min(choices, poolSize).
func (g *OptionGenerator) ChoiceCount(poolSize int) int {
	if poolSize < g.choices {
		return poolSize
	}
	return g.choices
}

// GenerateOptions returns the correct code plus distractors drawn from pool, shuffled.
// Distractors are sampled uniformly with replacement and duplicates are rejected,
// so pool must not contain repeated codes.
func (g *OptionGenerator) GenerateOptions(correct string, pool []string) []string {
	target := g.ChoiceCount(len(pool))
	if target < 1 {
		target = 1
	}

	used := map[string]struct{}{correct: {}}
	options := make([]string, 0, target)
	options = append(options, correct)

	for len(options) < target {
		code := pool[g.rnd.Intn(len(pool))]
		if _, ok := used[code]; ok {
			continue
		}
		used[code] = struct{}{}
		options = append(options, code)
	}

	shuffle(g.rnd, options)

	return options
}
