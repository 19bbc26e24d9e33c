// Package hist provides fixed-bin histograms over [0, 1] with text bar
// rendering, used by the explorers to visualize sampling distributions.
package hist

import (
	"fmt"
	"strings"
)

// Histogram counts samples in equal-width bins over [0, 1].
type Histogram struct {
	bins  []int
	sum   float64
	total int
}

// New creates a histogram with the given number of bins (minimum 1).
func New(bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}
	return &Histogram{bins: make([]int, bins)}
}

// Add records a sample. Values are clamped into [0, 1]; exactly 1 lands
// in the last bin.
func (h *Histogram) Add(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	i := int(v * float64(len(h.bins)))
	if i == len(h.bins) {
		i--
	}
	h.bins[i]++
	h.sum += v
	h.total++
}

// Fill records n samples drawn from f.
func (h *Histogram) Fill(n int, f func() float64) {
	for i := 0; i < n; i++ {
		h.Add(f())
	}
}

// Total returns the number of recorded samples.
func (h *Histogram) Total() int {
	return h.total
}

// Bins returns a copy of the bin counts.
func (h *Histogram) Bins() []int {
	out := make([]int, len(h.bins))
	copy(out, h.bins)
	return out
}

// Mean returns the mean of all recorded samples, or 0 if empty.
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}
	return h.sum / float64(h.total)
}

// Render produces one text row per bin: a range label, a bar scaled so
// the fullest bin spans width cells, and the count.
func (h *Histogram) Render(width int) []string {
	if width < 1 {
		width = 1
	}
	max := 0
	for _, c := range h.bins {
		if c > max {
			max = c
		}
	}

	rows := make([]string, len(h.bins))
	step := 1.0 / float64(len(h.bins))
	for i, c := range h.bins {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", c*width/max)
		}
		rows[i] = fmt.Sprintf("%4.2f %-*s %d", float64(i)*step, width, bar, c)
	}
	return rows
}
