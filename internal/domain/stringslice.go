package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringSlice stores a []string as a JSON array column, following the
// teacher's json-encode-then-store idiom used for pagination cursors.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal([]string(s))
}

func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("domain: unsupported type for StringSlice scan")
	}
}
