package recurrence

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "driver-planning-backend/internal/errors"
)

// ToArray normalizes a weekday pattern coming from storage or a request: a bare integer,
// a JSON string ("5", "[1,2]") or an already materialized array all collapse to []int.
// nil and empty input give an empty, non-nil slice.
func ToArray(v interface{}) ([]int, error) {
	switch x := v.(type) {
	case nil:
		return []int{}, nil
	case Pattern:
		return append([]int{}, x...), nil
	case WeekdaySet:
		return append([]int{}, x...), nil
	case []int:
		return append([]int{}, x...), nil
	case []float64:
		out := make([]int, 0, len(x))
		for _, f := range x {
			n, err := toInt(f)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case []interface{}:
		out := make([]int, 0, len(x))
		for _, item := range x {
			n, err := toInt(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	case json.RawMessage:
		return parseString(string(x))
	default:
		n, err := toInt(x)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	}
}

func parseString(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return []int{}, nil
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil, fmt.Errorf("%w: cannot decode %q", apperrors.ErrInvalidPattern, s)
	}
	return ToArray(decoded)
}

func toInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float32:
		return toInt(float64(x))
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: %v is not a whole number", apperrors.ErrInvalidPattern, x)
		}
		return int(x), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: unsupported value of type %T", apperrors.ErrInvalidPattern, v)
	}
}

// Pattern is a weekday pattern as it crosses the storage and request boundaries.
// Every decoding path goes through ToArray.
type Pattern []int

// UnmarshalJSON accepts a number, an array or a JSON-encoded string.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
	}
	values, err := ToArray(raw)
	if err != nil {
		return err
	}
	*p = values
	return nil
}

// MarshalJSON always encodes an array, [] for an empty pattern.
func (p Pattern) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int(p))
}

// Scan reads the JSON text stored in the frequency column.
func (p *Pattern) Scan(src interface{}) error {
	values, err := ToArray(src)
	if err != nil {
		return err
	}
	*p = values
	return nil
}

// Value stores the pattern as a JSON array.
func (p Pattern) Value() (driver.Value, error) {
	data, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// IsEmpty reports whether the pattern holds no weekday.
func (p Pattern) IsEmpty() bool {
	return len(p) == 0
}

// WeekdaySet is a validated, deduplicated and ascending set of weekday numbers (0=Sunday..6=Saturday).
type WeekdaySet []int

// NewWeekdaySet validates values and returns them as a set.
func NewWeekdaySet(values []int) (WeekdaySet, error) {
	seen := make(map[int]struct{}, len(values))
	set := make(WeekdaySet, 0, len(values))
	for _, v := range values {
		if v < 0 || v > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", apperrors.ErrInvalidPattern, v)
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	sort.Ints(set)
	return set, nil
}

// ParseWeekdaySet normalizes any pattern representation into a set.
func ParseWeekdaySet(v interface{}) (WeekdaySet, error) {
	values, err := ToArray(v)
	if err != nil {
		return nil, err
	}
	return NewWeekdaySet(values)
}

// Pattern converts the set back to its boundary representation.
func (s WeekdaySet) Pattern() Pattern {
	return append(Pattern{}, s...)
}

// Equal reports whether both sets hold the same weekdays.
func (s WeekdaySet) Equal(other WeekdaySet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
