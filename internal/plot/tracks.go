// Package plot renders annotated well logs as terminal log tracks.
//
// Tracks are drawn with depth increasing downward, the usual convention
// for log displays. Each row shows the depth, a gamma ray track, a
// density track and the predicted lithology.
package plot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

const (
	// DefaultTrackWidth is the number of cells per curve track.
	DefaultTrackWidth = 24

	// DefaultRows is the maximum number of rows drawn.
	DefaultRows = 60

	depthWidth = 10
	marker     = "●"
	fill       = "·"
)

// Options controls the rendering of Tracks.
type Options struct {
	// Rows limits the number of rows. Longer logs are down-sampled
	// evenly across the depth range. Zero means DefaultRows.
	Rows int

	// TrackWidth is the width of each curve track. Zero means
	// DefaultTrackWidth.
	TrackWidth int

	// Styles colours the output. Nil means DefaultStyles.
	Styles *Styles
}

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Header    lipgloss.Style
	Scale     lipgloss.Style
	Depth     lipgloss.Style
	GammaRay  lipgloss.Style
	Density   lipgloss.Style
	Track     lipgloss.Style
	Lithology map[string]lipgloss.Style
	Fallback  []lipgloss.Style
}

// DefaultStyles returns the default palette. Sandstone and shale use the
// conventional yellow and grey; other labels cycle through Fallback.
func DefaultStyles() *Styles {
	return &Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Scale:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Depth:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		GammaRay: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Density:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Track:    lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Lithology: map[string]lipgloss.Style{
			"Sandstone": lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
			"Shale":     lipgloss.NewStyle().Foreground(lipgloss.Color("#9399B2")),
		},
		Fallback: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7")),
		},
	}
}

// Scale is the value range of a track.
type Scale struct {
	Min, Max float64
}

// Position maps v onto a cell in [0, width).
func (s Scale) Position(v float64, width int) int {
	if width <= 1 || s.Max <= s.Min {
		return 0
	}
	p := int(math.Round((v - s.Min) / (s.Max - s.Min) * float64(width-1)))
	if p < 0 {
		return 0
	}
	if p >= width {
		return width - 1
	}
	return p
}

// ScaleOf returns the range of the present values. ok is false when no
// value is present.
func ScaleOf(values []float64, present []bool) (s Scale, ok bool) {
	for i, v := range values {
		if !present[i] {
			continue
		}
		if !ok {
			s = Scale{Min: v, Max: v}
			ok = true
			continue
		}
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s, ok
}

// sample is one plotted row.
type sample struct {
	depth     float64
	gr        float64
	grOK      bool
	rhob      float64
	rhobOK    bool
	lithology string
}

// Tracks renders the GR and RHOB tracks of ds.
func Tracks(ds *domain.AnnotatedDataset, opts Options) (string, error) {
	if ds == nil {
		return "", fmt.Errorf("%w: nil dataset", domain.ErrInvalidInput)
	}
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.TrackWidth <= 0 {
		opts.TrackWidth = DefaultTrackWidth
	}
	st := opts.Styles
	if st == nil {
		st = DefaultStyles()
	}

	samples := collect(ds)
	if len(samples) == 0 {
		return st.Scale.Render("(no records)") + "\n", nil
	}

	var grVals, rhobVals []float64
	var grOK, rhobOK []bool
	for _, s := range samples {
		grVals, grOK = append(grVals, s.gr), append(grOK, s.grOK)
		rhobVals, rhobOK = append(rhobVals, s.rhob), append(rhobOK, s.rhobOK)
	}
	grScale, _ := ScaleOf(grVals, grOK)
	rhobScale, _ := ScaleOf(rhobVals, rhobOK)

	rows := Downsample(samples, opts.Rows)

	var b strings.Builder
	w := opts.TrackWidth
	b.WriteString(strings.Join([]string{
		st.Header.Render(pad(domain.CurveDepth, depthWidth)),
		st.Header.Render(pad(domain.CurveGammaRay, w)),
		st.Header.Render(pad(domain.CurveDensity, w)),
		st.Header.Render("LITHOLOGY"),
	}, " "))
	b.WriteByte('\n')
	b.WriteString(strings.Join([]string{
		pad("", depthWidth),
		st.Scale.Render(scaleLabel(grScale, w)),
		st.Scale.Render(scaleLabel(rhobScale, w)),
	}, " "))
	b.WriteByte('\n')

	for _, s := range rows {
		b.WriteString(st.Depth.Render(padLeft(strconv.FormatFloat(s.depth, 'f', 2, 64), depthWidth)))
		b.WriteByte(' ')
		b.WriteString(track(s.gr, s.grOK, grScale, w, st.GammaRay, st.Track))
		b.WriteByte(' ')
		b.WriteString(track(s.rhob, s.rhobOK, rhobScale, w, st.Density, st.Track))
		b.WriteByte(' ')
		b.WriteString(st.lithologyStyle(s.lithology).Render(s.lithology))
		b.WriteByte('\n')
	}

	if len(rows) < len(samples) {
		b.WriteString(st.Scale.Render(fmt.Sprintf("(%d of %d rows shown)", len(rows), len(samples))))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// collect extracts the plotted curves sorted by depth, shallow first.
func collect(ds *domain.AnnotatedDataset) []sample {
	depth, _ := ds.Series(domain.CurveDepth)
	gr, grOK := ds.Series(domain.CurveGammaRay)
	rhob, rhobOK := ds.Series(domain.CurveDensity)
	lith := ds.Lithologies()

	samples := make([]sample, len(depth))
	for i := range depth {
		samples[i] = sample{
			depth:     depth[i],
			gr:        gr[i],
			grOK:      grOK[i],
			rhob:      rhob[i],
			rhobOK:    rhobOK[i],
			lithology: lith[i],
		}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].depth < samples[j].depth
	})
	return samples
}

// Downsample picks at most n evenly spaced elements, always keeping the
// first and last.
func Downsample[T any](in []T, n int) []T {
	if n <= 0 || len(in) <= n {
		return in
	}
	if n == 1 {
		return in[:1]
	}
	out := make([]T, n)
	step := float64(len(in)-1) / float64(n-1)
	for i := range out {
		out[i] = in[int(math.Round(float64(i)*step))]
	}
	return out
}

func track(v float64, ok bool, sc Scale, width int, mark, bg lipgloss.Style) string {
	if !ok {
		return bg.Render(strings.Repeat(" ", width))
	}
	p := sc.Position(v, width)
	return bg.Render(strings.Repeat(fill, p)) +
		mark.Render(marker) +
		bg.Render(strings.Repeat(" ", width-p-1))
}

func scaleLabel(sc Scale, width int) string {
	lo := strconv.FormatFloat(sc.Min, 'g', 4, 64)
	hi := strconv.FormatFloat(sc.Max, 'g', 4, 64)
	gap := width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	return lo + strings.Repeat(" ", gap) + hi
}

func (s *Styles) lithologyStyle(label string) lipgloss.Style {
	if st, ok := s.Lithology[label]; ok {
		return st
	}
	if len(s.Fallback) == 0 || label == "" {
		return lipgloss.NewStyle()
	}
	var h int
	for _, r := range label {
		h += int(r)
	}
	return s.Fallback[h%len(s.Fallback)]
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
