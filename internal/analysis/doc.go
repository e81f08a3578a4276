// Package analysis summarizes the population series of a finished run.
//
//   - [PowerSpectrum]: magnitude spectrum of a series via FFT
//   - [DominantPeriod]: the strongest oscillation period in generations
//   - [Summarize]: min, max, mean and the generation the population settled
//
// A blinker has constant population, so its spectrum is flat; oscillators
// whose population changes, such as the beacon (6, 8, 6, 8, ...), show a
// peak at their period:
//
//	period, _ := analysis.DominantPeriod(population)
//	// period == 2 for a beacon
package analysis
