// Package summary computes descriptive statistics over generated heightmaps.
package summary

import (
	"math"
	"sort"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one heightmap.
type Summary struct {
	Side      int
	Min       float64
	Max       float64
	Mean      float64
	StdDev    float64
	Roughness float64 // mean absolute difference between adjacent cells
	Corners   [4]float64
}

// Aggregate describes a batch of heightmaps.
type Aggregate struct {
	Count         int
	MeanOfMeans   float64
	MeanStdDev    float64
	MeanRoughness float64
	MinRoughness  float64
	MaxRoughness  float64
}

// Of computes the summary of a grid.
func Of(g *heightmap.Grid) Summary {
	raw := g.Values()
	vals := make([]float64, len(raw))
	for i, v := range raw {
		vals[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(vals, nil)
	if math.IsNaN(std) {
		std = 0
	}

	var corners [4]float64
	for i, c := range g.Corners() {
		corners[i] = float64(c)
	}

	return Summary{
		Side:      g.Side(),
		Min:       floats.Min(vals),
		Max:       floats.Max(vals),
		Mean:      mean,
		StdDev:    std,
		Roughness: roughness(vals, g.Side()),
		Corners:   corners,
	}
}

func roughness(vals []float64, side int) float64 {
	var sum float64
	var n int
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := vals[y*side+x]
			if x+1 < side {
				sum += math.Abs(v - vals[y*side+x+1])
				n++
			}
			if y+1 < side {
				sum += math.Abs(v - vals[(y+1)*side+x])
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Combine aggregates per-map summaries.
func Combine(summaries []Summary) Aggregate {
	if len(summaries) == 0 {
		return Aggregate{}
	}
	means := make([]float64, len(summaries))
	stds := make([]float64, len(summaries))
	rough := make([]float64, len(summaries))
	for i, s := range summaries {
		means[i] = s.Mean
		stds[i] = s.StdDev
		rough[i] = s.Roughness
	}
	return Aggregate{
		Count:         len(summaries),
		MeanOfMeans:   stat.Mean(means, nil),
		MeanStdDev:    stat.Mean(stds, nil),
		MeanRoughness: stat.Mean(rough, nil),
		MinRoughness:  floats.Min(rough),
		MaxRoughness:  floats.Max(rough),
	}
}

// CornerRanks returns the rank (0 = lowest) of each corner. Ties share the
// lower rank.
func CornerRanks(corners [4]float64) [4]int {
	idx := []int{0, 1, 2, 3}
	sort.SliceStable(idx, func(a, b int) bool { return corners[idx[a]] < corners[idx[b]] })

	var ranks [4]int
	for pos, i := range idx {
		ranks[i] = pos
		if pos > 0 && corners[i] == corners[idx[pos-1]] {
			ranks[i] = ranks[idx[pos-1]]
		}
	}
	return ranks
}
