// Package dashboard computes the instructor's view of class results.
package dashboard

import (
	"math"
	"slices"
	"sort"

	"github.com/abhisek/safetypro/internal/catalog"
)

// DefaultMaxScore scales the chart when there are no results.
const DefaultMaxScore = 100

// AllDates is the DateSelector that applies no filter.
const AllDates DateSelector = ""

// DateSelector picks results from one day ("2006-01-02").
type DateSelector string

// String returns the selector label.
func (d DateSelector) String() string {
	if d == AllDates {
		return "Todas as datas"
	}
	return string(d)
}

// Dates returns the distinct result dates in ascending order.
func Dates(results []catalog.StudentResult) []string {
	seen := make(map[string]bool, len(results))
	var out []string
	for _, r := range results {
		if !seen[r.Date] {
			seen[r.Date] = true
			out = append(out, r.Date)
		}
	}
	sort.Strings(out)
	return out
}

// Selectors returns AllDates followed by one selector per date.
func Selectors(results []catalog.StudentResult) []DateSelector {
	out := []DateSelector{AllDates}
	for _, d := range Dates(results) {
		out = append(out, DateSelector(d))
	}
	return out
}

// Filter returns the results recorded on sel, in input order.
func Filter(results []catalog.StudentResult, sel DateSelector) []catalog.StudentResult {
	if sel == AllDates {
		return slices.Clone(results)
	}
	var out []catalog.StudentResult
	for _, r := range results {
		if r.Date == string(sel) {
			out = append(out, r)
		}
	}
	return out
}

// Summary holds the headline figures for a result set.
type Summary struct {
	Count    int
	Average  int
	Best     *catalog.StudentResult
	MaxScore int
}

// Summarize computes the headline figures. Best is the first result
// with the highest score.
func Summarize(results []catalog.StudentResult) Summary {
	s := Summary{Count: len(results), MaxScore: DefaultMaxScore}
	if len(results) == 0 {
		return s
	}

	total := 0
	best := 0
	for i, r := range results {
		total += r.Score
		if r.Score > results[best].Score {
			best = i
		}
	}
	b := results[best]
	s.Best = &b
	s.MaxScore = b.Score
	s.Average = int(math.Floor(float64(total)/float64(len(results)) + 0.5))
	return s
}

// Ranked returns a copy sorted by descending score. Ties keep input order.
func Ranked(results []catalog.StudentResult) []catalog.StudentResult {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b catalog.StudentResult) int {
		return b.Score - a.Score
	})
	return out
}

// BarPercent returns score as a percentage of maxScore, clamped to
// 0-100. A zero maxScore gives 0.
func BarPercent(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	p := 100 * score / maxScore
	return min(max(p, 0), 100)
}
