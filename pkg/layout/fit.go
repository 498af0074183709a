package layout

import "golang.org/x/image/font"

const (
	// DefaultMinFontSize is the floor of the fit search. When even this
	// size overflows the box it is still returned: callers accept a
	// best-effort overflow rather than a failed design.
	DefaultMinFontSize = 40
	// DefaultMaxFontSize is the ceiling of the fit search.
	DefaultMaxFontSize = 400
	// DefaultLineSpacing multiplies each line's height (except the last)
	// in stacked fitting.
	DefaultLineSpacing = 1.3
)

// FitOptions bounds the fit search. Zero values take the defaults.
type FitOptions struct {
	MinSize int
	MaxSize int
}

func (o FitOptions) bounds() (lo, hi int) {
	lo, hi = o.MinSize, o.MaxSize
	if lo <= 0 {
		lo = DefaultMinFontSize
	}
	if hi <= 0 {
		hi = DefaultMaxFontSize
	}
	return lo, hi
}

// FitSize finds the largest integer size in [MinSize, MaxSize] whose block
// bounding box fits within maxW×maxH, and returns the face at that size.
// Each candidate size costs one loader call, O(log(range)) in total.
// If no size fits, the minimum is returned anyway.
func FitSize(load FontLoader, text string, maxW, maxH int, opts FitOptions) (font.Face, int, error) {
	lo, hi := opts.bounds()
	best := lo

	for lo <= hi {
		mid := (lo + hi) / 2
		face, err := load(mid)
		if err != nil {
			return nil, 0, err
		}
		b := measureBlock(face, text)
		if b.Width <= maxW && b.Height <= maxH {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	face, err := load(best)
	return face, best, err
}

// LineMetric is one line's placement within a stacked block. X is always 0;
// horizontal centering is applied at draw time against the line's Width.
type LineMetric struct {
	Text   string
	X      int
	Y      int // offset from the block's top
	Width  int
	Height int
}

// FitLines finds the largest size where every line fits in maxW and the
// spaced sum of line heights fits in maxH. A line overflowing the width
// fails the candidate immediately, skipping the remaining lines. Returns
// the face, the chosen size, and the line metrics recomputed at that size;
// like FitSize, the minimum size is returned even when nothing fits.
func FitLines(load FontLoader, lines []string, maxW, maxH int, spacing float64, opts FitOptions) (font.Face, int, []LineMetric, error) {
	if spacing <= 0 {
		spacing = DefaultLineSpacing
	}
	lo, hi := opts.bounds()
	best := lo

	for lo <= hi {
		mid := (lo + hi) / 2
		face, err := load(mid)
		if err != nil {
			return nil, 0, nil, err
		}
		if _, total, ok := stackLines(face, lines, maxW, spacing); ok && total <= maxH {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	face, err := load(best)
	if err != nil {
		return nil, 0, nil, err
	}
	metrics, _, _ := stackLines(face, lines, -1, spacing)
	return face, best, metrics, nil
}

// stackLines computes line metrics at one face. With maxW >= 0 it reports
// ok=false as soon as a line overflows the width; maxW < 0 disables the
// check so final metrics exist even for an overflowing best-effort size.
func stackLines(face font.Face, lines []string, maxW int, spacing float64) (metrics []LineMetric, total int, ok bool) {
	metrics = make([]LineMetric, 0, len(lines))
	for i, line := range lines {
		m := Measure(face, line)
		if maxW >= 0 && m.Width > maxW {
			return nil, 0, false
		}
		metrics = append(metrics, LineMetric{Text: line, Y: total, Width: m.Width, Height: m.Height})
		if i < len(lines)-1 {
			total += int(float64(m.Height) * spacing)
		} else {
			total += m.Height
		}
	}
	return metrics, total, true
}
