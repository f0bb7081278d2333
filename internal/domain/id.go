package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ID identifies a task, weekly event, or monthly event. Fresh ids are
// millisecond timestamps, so the zero value never names a stored entry.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID normalizes an id arriving from outside the store. Drag payloads
// and command-line arguments carry ids as strings while persisted JSON
// carries numbers; both forms resolve to the same ID.
func ParseID(v any) (ID, error) {
	switch x := v.(type) {
	case ID:
		return x, nil
	case int:
		return ID(x), nil
	case int64:
		return ID(x), nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidID, x)
		}
		return ID(x), nil
	case json.Number:
		return parseIDString(x.String())
	case string:
		return parseIDString(x)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, v)
	}
}

func parseIDString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ParseID(f)
}

// UnmarshalJSON accepts both numeric and string ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*id = 0
		return nil
	}
	parsed, err := ParseID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NextID returns an id derived from the clock that is strictly greater
// than last, so ids stay unique when several are minted within the same
// millisecond.
func NextID(now time.Time, last ID) ID {
	candidate := ID(now.UnixMilli())
	if candidate <= last {
		return last + 1
	}
	return candidate
}
