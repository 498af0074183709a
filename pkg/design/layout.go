// layout.go — Closed enum of text layout strategies.
package design

import "fmt"

// Layout selects a text placement strategy. Using a closed enum (rather
// than string keys) lets generator switches stay exhaustive.
type Layout int

const (
	// LayoutCentered places the whole text block centered in the safe zone.
	LayoutCentered Layout = iota
	// LayoutStacked places each line independently centered, stacked vertically.
	LayoutStacked
	// LayoutArced places each character along a circular arc.
	LayoutArced
)

// LayoutNames lists the accepted layout names in CLI order.
var LayoutNames = []string{"centered", "stacked", "arced"}

// ParseLayout converts a layout name to its enum value.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "centered", "":
		return LayoutCentered, nil
	case "stacked":
		return LayoutStacked, nil
	case "arced":
		return LayoutArced, nil
	default:
		return 0, fmt.Errorf("unknown layout %q: available: centered, stacked, arced", s)
	}
}

// String returns the layout's CLI name.
func (l Layout) String() string {
	switch l {
	case LayoutCentered:
		return "centered"
	case LayoutStacked:
		return "stacked"
	case LayoutArced:
		return "arced"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}
