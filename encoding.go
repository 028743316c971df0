package serialdate

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the Compact form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Compact()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the Compact form.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes d as a Compact string, e.g. "20240307".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Compact())
}

// UnmarshalJSON accepts either a Compact string or a serial number. A JSON
// null leaves d unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		var serial int
		if err := json.Unmarshal(data, &serial); err != nil {
			return fmt.Errorf("%w: %s is neither a YYYYMMDD string nor a serial number", ErrInvalidDate, data)
		}
		parsed, err := FromSerial(serial)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.Compact(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The scalar is read as a Compact
// date whether or not it is quoted.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a YYYYMMDD scalar", ErrInvalidDate, value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Value implements driver.Valuer. Dates are stored in the Compact form.
func (d Date) Value() (driver.Value, error) {
	return d.Compact(), nil
}

// Scan implements sql.Scanner. It accepts a serial number (int64), a Compact
// string or a time.Time.
func (d *Date) Scan(src any) error {
	var (
		parsed Date
		err    error
	)
	switch v := src.(type) {
	case int64:
		parsed, err = FromSerial(int(v))
	case string:
		parsed, err = Parse(v)
	case []byte:
		parsed, err = Parse(string(v))
	case time.Time:
		parsed, err = FromTime(v)
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into Date", ErrInvalidDate)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
