package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SplitList converts comma-separated free text into an ordered sequence.
// Surrounding whitespace is trimmed and empty segments are dropped, so
// "a, b ,, c" becomes ["a", "b", "c"].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinList is the inverse boundary conversion, used when a stored
// sequence is put back into a single form field.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// dateFormats are the wire formats accepted for date fields, in the
// order they are tried. Date and datetime-local inputs submit the bare
// forms; API clients send RFC 3339.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date is a timestamp that tolerates the date-only strings HTML date
// inputs submit. It marshals as RFC 3339 and stores as a native
// timestamp column.
type Date struct {
	time.Time
}

// Now returns the current instant as a Date.
func Now() Date { return Date{Time: time.Now().UTC()} }

// ParseDate parses any accepted wire format. An empty string yields the
// zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so GORM stores a plain timestamp.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: t}
		return nil
	case []byte:
		parsed, err := ParseDate(string(t))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(t)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", v)
	}
}

// GormDataType maps Date onto each dialect's timestamp column type.
func (Date) GormDataType() string { return "time" }
