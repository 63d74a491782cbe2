package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when an input matches none of the accepted layouts
var ErrInvalidFormat = errors.New("invalid date format")

// DisplayLayout is the canonical display form, DD-MM-YYYY
const DisplayLayout = "02-01-2006"

// DefaultLayouts is the ordered list of accepted input layouts. Order matters:
// the first layout that parses strictly wins, so ISO forms are tried before the
// day-first display form.
var DefaultLayouts = []string{time.RFC3339, "2006-01-02", DisplayLayout}

// Normalizer converts heterogeneous date inputs into the single canonical
// time.Time representation used for storage, and formats stored dates back to
// their display string. A nil date is a valid value meaning "no date".
type Normalizer struct {
	layouts []string
}

func NewNormalizer(layouts ...string) *Normalizer {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	return &Normalizer{layouts: layouts}
}

// Parse attempts each accepted layout in order. Empty input yields (nil, nil).
// Input matching no layout yields ErrInvalidFormat wrapped with the offending
// value; callers must reject the whole request and attempt no write.
func (n *Normalizer) Parse(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}
	for _, layout := range n.layouts {
		if t, err := time.Parse(layout, input); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}

// Format renders a stored date in the display layout. Format(nil) is nil.
// The display layout is part of the accepted parse list, so non-nil dates
// round-trip through Parse at day precision.
func (n *Normalizer) Format(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DisplayLayout)
	return &s
}

// Accepted names the accepted layouts for error messages.
func (n *Normalizer) Accepted() string {
	return strings.Join(n.layouts, ", ")
}
