package rl

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// DataSet is whatever an Analyzer extracts from a run's traces.
type DataSet interface{}

type Analyzer func(traces []*Trace) DataSet

// Comparator renders one dataset per named run.
type Comparator func(names []string, ds []DataSet) error

// WinRateAnalyzer computes the mean of the isWin indicator over
// consecutive windows of episodes.
func WinRateAnalyzer(window int, isWin func(*Trace) bool) Analyzer {
	return func(traces []*Trace) DataSet {
		wins := make([]float64, len(traces))
		for i, trace := range traces {
			if trace != nil && isWin(trace) {
				wins[i] = 1
			}
		}
		rates := make([]float64, 0, len(wins)/window+1)
		for start := 0; start+window <= len(wins); start += window {
			rates = append(rates, stat.Mean(wins[start:start+window], nil))
		}
		return rates
	}
}

// LearningCurvePlotter saves a win-rate-over-episodes line plot, one
// line per run.
func LearningCurvePlotter(plotPath string, window int) Comparator {
	return func(names []string, ds []DataSet) error {
		if dir := filepath.Dir(plotPath); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				os.MkdirAll(dir, os.ModePerm)
			}
		}
		p := plot.New()
		p.Title.Text = "Learning curve"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Win rate"
		for i := 0; i < len(names); i++ {
			rates, ok := ds[i].([]float64)
			if !ok {
				return fmt.Errorf("dataset %d is not a win-rate series", i)
			}
			points := make(plotter.XYs, len(rates))
			for j, v := range rates {
				points[j] = plotter.XY{
					X: float64((j + 1) * window),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		return p.Save(8*vg.Inch, 8*vg.Inch, plotPath)
	}
}
