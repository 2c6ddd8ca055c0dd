package nano

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID is a numeric identifier the API transports as a JSON string
// ("42", not 42). Zero is the sentinel for "not yet assigned" and is only
// meaningful on objects being submitted, never on fetched ones.
type ID uint64

// MarshalJSON encodes the ID as its stringified decimal form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(id), 10))
}

// UnmarshalJSON decodes a stringified decimal ID. A bare number is
// rejected, matching the API's own encoding.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding id: %w", err)
	}

	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("decoding id: %w", err)
	}

	*id = ID(val)

	return nil
}

// OptID is a stringified numeric field the API populates unreliably, such
// as postal codes. Any value that fails to parse decodes as absent rather
// than failing the whole document.
type OptID struct {
	Value uint64
	Valid bool
}

// MarshalJSON encodes the value as a stringified number, or null when
// absent.
func (o OptID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(strconv.FormatUint(o.Value, 10))
}

// UnmarshalJSON decodes leniently: null, malformed, or non-string input
// all yield the absent value.
func (o *OptID) UnmarshalJSON(data []byte) error {
	*o = OptID{}

	var raw string
	if json.Unmarshal(data, &raw) != nil {
		return nil
	}

	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}

	*o = OptID{Value: val, Valid: true}

	return nil
}

// StringFloat is a float the API transports as a JSON string, such as the
// fundometer's raised total.
type StringFloat float64

// MarshalJSON encodes the value as its stringified decimal form.
func (f StringFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(f), 'f', -1, 64))
}

// UnmarshalJSON decodes a stringified float.
func (f *StringFloat) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding stringified float: %w", err)
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("decoding stringified float: %w", err)
	}

	*f = StringFloat(val)

	return nil
}

// Minutes is a duration the API transports as an integer count of minutes.
type Minutes time.Duration

// Duration returns the value as a time.Duration.
func (m Minutes) Duration() time.Duration {
	return time.Duration(m)
}

// MarshalJSON encodes the duration as a whole number of minutes.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(time.Duration(m) / time.Minute))
}

// UnmarshalJSON decodes an integer minute count.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var mins int64

	err := json.Unmarshal(data, &mins)
	if err != nil {
		return fmt.Errorf("decoding minute count: %w", err)
	}

	*m = Minutes(time.Duration(mins) * time.Minute)

	return nil
}

const dateLayout = "2006-01-02"

// Date is a day-precision timestamp, wire form "2006-01-02".
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date in "2006-01-02" form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON decodes a "2006-01-02" date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}

	d.Time = parsed

	return nil
}

// ImageURL is an image location the API wraps in a {"src": ...} object on
// the way out but which callers only ever want as the URL itself.
type ImageURL string

// MarshalJSON encodes the bare URL string.
func (u ImageURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u))
}

// UnmarshalJSON unwraps {"src": "..."} into the URL.
func (u *ImageURL) UnmarshalJSON(data []byte) error {
	var wrap struct {
		Src string `json:"src"`
	}

	err := json.Unmarshal(data, &wrap)
	if err != nil {
		return fmt.Errorf("decoding image source: %w", err)
	}

	*u = ImageURL(wrap.Src)

	return nil
}
