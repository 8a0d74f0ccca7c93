package statistics

import (
	"fmt"
	"math"

	"github.com/lox/pokerhands/internal/evaluator"
)

// RoundResult represents the outcome of a single dealt round
type RoundResult struct {
	Seed       int64                        // RNG seed for this round (for replay)
	Players    int                          // Hands dealt in the round
	Categories [evaluator.NumCategories]int // Hands per category
	Best       evaluator.Category           // Winning category
	Winners    int                          // Hands sharing the winning category
}

// ResultFromHands builds a RoundResult from classified hands
func ResultFromHands(seed int64, hands []evaluator.Hand) RoundResult {
	result := RoundResult{
		Seed:    seed,
		Players: len(hands),
		Best:    evaluator.Best(hands),
	}
	for _, h := range hands {
		result.Categories[h.Category]++
	}
	result.Winners = result.Categories[result.Best]
	return result
}

// Statistics tracks category frequencies over many rounds
type Statistics struct {
	Rounds int
	Hands  int

	HandCounts [evaluator.NumCategories]int // Every classified hand
	WinCounts  [evaluator.NumCategories]int // Winning category per round

	SplitRounds int     // Rounds where more than one hand shared the best category
	SumWinners  float64 // For mean winners per round
	SumWinners2 float64 // Sum of squares for variance calculation
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	s.Hands += result.Players
	for c, n := range result.Categories {
		s.HandCounts[c] += n
	}
	s.WinCounts[result.Best]++

	if result.Winners > 1 {
		s.SplitRounds++
	}
	w := float64(result.Winners)
	s.SumWinners += w
	s.SumWinners2 += w * w
}

// Merge folds another set of statistics into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	for c := range s.HandCounts {
		s.HandCounts[c] += other.HandCounts[c]
		s.WinCounts[c] += other.WinCounts[c]
	}
	s.SplitRounds += other.SplitRounds
	s.SumWinners += other.SumWinners
	s.SumWinners2 += other.SumWinners2
}

// Frequency returns the share of hands classified as c
func (s *Statistics) Frequency(c evaluator.Category) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.HandCounts[c]) / float64(s.Hands)
}

// WinFrequency returns the share of rounds won with category c
func (s *Statistics) WinFrequency(c evaluator.Category) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.WinCounts[c]) / float64(s.Rounds)
}

// StdError returns the standard error of Frequency(c)
func (s *Statistics) StdError(c evaluator.Category) float64 {
	if s.Hands == 0 {
		return 0
	}
	p := s.Frequency(c)
	return math.Sqrt(p * (1 - p) / float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for Frequency(c)
func (s *Statistics) ConfidenceInterval95(c evaluator.Category) (float64, float64) {
	p := s.Frequency(c)
	margin := 1.96 * s.StdError(c) // 95% confidence
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanWinners returns the mean number of hands sharing the best category
func (s *Statistics) MeanWinners() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumWinners / float64(s.Rounds)
}

// WinnersVariance returns the sample variance of winners per round
func (s *Statistics) WinnersVariance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.MeanWinners()
	return (s.SumWinners2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// Validate performs consistency checks on the collected counts
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	totalHands := 0
	for _, n := range s.HandCounts {
		totalHands += n
	}
	if totalHands != s.Hands {
		return fmt.Errorf("category hands total (%d) does not match total hands (%d)",
			totalHands, s.Hands)
	}

	totalWins := 0
	for _, n := range s.WinCounts {
		totalWins += n
	}
	if totalWins != s.Rounds {
		return fmt.Errorf("winning categories total (%d) does not match rounds (%d)",
			totalWins, s.Rounds)
	}

	if s.SplitRounds > s.Rounds {
		return fmt.Errorf("split rounds (%d) exceeds total rounds (%d)", s.SplitRounds, s.Rounds)
	}
	return nil
}
