package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NA is the sentinel written for any value a record does not carry. It is an
// output-only marker: reading "NA" from a sheet means "no value", never the
// literal text.
const NA = "NA"

// DateLayout is the display form for all dates on a sheet.
const DateLayout = "02-01-2006"

// dateLayouts are accepted on input, tried in order.
var dateLayouts = []string{
	DateLayout,
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// Coercer converts between cell text and typed field values. CoerceIn and
// CoerceOut are inverses over the values a record can actually hold: for any
// field, CoerceIn(CoerceOut(v)) yields v again, and CoerceOut of an absent
// value is always NA.
type Coercer struct{}

// CoerceIn parses cell text into the typed value for f. Blank cells and the
// NA sentinel never reach this method; callers skip them. The returned value
// is one of string, int, float64, bool, or time.Time, matching f.Kind.
func (Coercer) CoerceIn(f *Field, cell string) (interface{}, error) {
	s := strings.TrimSpace(cell)
	switch f.Kind {
	case KindText:
		return s, nil
	case KindInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			if f.ZeroDefault {
				return 0, nil
			}
			return nil, fmt.Errorf("%s: %q is not a whole number", f.Label, s)
		}
		return n, nil
	case KindFloat:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", f.Label, s)
		}
		return x, nil
	case KindDate:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%s: %q is not a date (want dd-mm-yyyy)", f.Label, s)
	case KindBool:
		b, err := parseBool(f.Bool, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Label, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%s: unhandled kind %v", f.Label, f.Kind)
	}
}

// CoerceOut renders a typed value as cell text. A nil value, an empty string,
// or a zero time renders as NA.
func (Coercer) CoerceOut(f *Field, v interface{}) string {
	if v == nil {
		return NA
	}
	switch x := v.(type) {
	case string:
		if x == "" {
			return NA
		}
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.IsZero() {
			return NA
		}
		return x.Format(DateLayout)
	case bool:
		return formatBool(f.Bool, x)
	default:
		return fmt.Sprint(x)
	}
}

func parseBool(enc BoolEncoding, s string) (bool, error) {
	switch enc {
	case BoolOneTwo:
		switch s {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		return false, fmt.Errorf("%q is not a valid value (want 1 or 2)", s)
	default:
		switch strings.ToLower(s) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		return false, fmt.Errorf("%q is not a valid value (want Yes or No)", s)
	}
}

func formatBool(enc BoolEncoding, b bool) string {
	if enc == BoolOneTwo {
		if b {
			return "1"
		}
		return "2"
	}
	if b {
		return "Yes"
	}
	return "No"
}
