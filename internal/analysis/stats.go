package analysis

// Summary describes a population series.
type Summary struct {
	Generations int
	Min         int
	Max         int
	Mean        float64
	Final       int
	// SettledAt is the first generation after which the population never
	// changes again, or -1 if it is still changing at the end.
	SettledAt int
}

func Summarize(population []int) Summary {
	if len(population) == 0 {
		return Summary{SettledAt: -1}
	}
	s := Summary{
		Generations: len(population),
		Min:         population[0],
		Max:         population[0],
		Final:       population[len(population)-1],
	}
	total := 0
	for _, p := range population {
		s.Min = min(s.Min, p)
		s.Max = max(s.Max, p)
		total += p
	}
	s.Mean = float64(total) / float64(len(population))

	s.SettledAt = len(population) - 1
	for s.SettledAt > 0 && population[s.SettledAt-1] == s.Final {
		s.SettledAt--
	}
	if s.SettledAt == len(population)-1 && len(population) > 1 {
		s.SettledAt = -1
	}
	return s
}
