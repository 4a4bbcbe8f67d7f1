package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that also accepts a quoted numeric string on input,
// as sent by form-driven clients ("difficulty": "3").
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the value as int64
func (f FlexInt) Int64() int64 {
	return int64(f)
}
