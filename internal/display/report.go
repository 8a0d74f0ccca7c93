package display

import (
	"fmt"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/reference"
	"github.com/lox/pokerhands/internal/simulator"
	"github.com/pterm/pterm"
)

// SimulationReport renders the category frequency table for a simulation run
func SimulationReport(result *simulator.Result) (string, error) {
	stats := result.Stats
	data := pterm.TableData{
		{"Category", "Hands", "Frequency", "95% CI", "Wins", "Win Rate"},
	}
	for _, c := range evaluator.Categories() {
		lo, hi := stats.ConfidenceInterval95(c)
		data = append(data, []string{
			c.String(),
			fmt.Sprintf("%d", stats.HandCounts[c]),
			fmt.Sprintf("%.4f%%", stats.Frequency(c)*100),
			fmt.Sprintf("[%.4f, %.4f]", lo*100, hi*100),
			fmt.Sprintf("%d", stats.WinCounts[c]),
			fmt.Sprintf("%.2f%%", stats.WinFrequency(c)*100),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}

	summary := fmt.Sprintf("Rounds: %d  Hands: %d  Split pots: %d  Mean winners: %.3f\nSeed: %d  Workers: %d  Elapsed: %s",
		stats.Rounds, stats.Hands, stats.SplitRounds, stats.MeanWinners(),
		result.Seed, result.Workers, result.Elapsed)

	box := pterm.DefaultBox.WithTitle("Simulation").WithTitleTopCenter()
	return box.Sprint(table) + "\n" + summary + "\n", nil
}

// VerifyReport renders the reference score range observed for each category
func VerifyReport(report *reference.Report) (string, error) {
	data := pterm.TableData{
		{"Category", "Hands", "Min Score", "Max Score"},
	}
	for _, c := range evaluator.Categories() {
		b := report.Bounds[c]
		row := []string{c.String(), fmt.Sprintf("%d", b.Count), "-", "-"}
		if b.Count > 0 {
			row[2] = fmt.Sprintf("%d", b.Min)
			row[3] = fmt.Sprintf("%d", b.Max)
		}
		data = append(data, row)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return table + fmt.Sprintf("\nHands checked: %d\n", report.Hands), nil
}
