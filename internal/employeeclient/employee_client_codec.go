package employeeclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-employee-form/internal/employeeform"
)

// Known spellings of the date-of-birth key. Decoding accepts all of them
// whatever key is configured for encoding.
const (
	DOBFieldLower = "dob"
	DOBFieldCamel = "doB"
)

var dobAliases = []string{DOBFieldLower, DOBFieldCamel, "dateOfBirth"}

// Codec maps records to and from the backend's JSON. It is the only place
// that knows the wire name of the date-of-birth field.
type Codec struct {
	dobField string
}

func NewCodec(dobField string) (Codec, error) {
	dobField = strings.TrimSpace(dobField)
	if dobField == "" {
		dobField = DOBFieldLower
	}
	if strings.ContainsAny(dobField, " \t\"") {
		return Codec{}, fmt.Errorf("invalid date of birth field name %q", dobField)
	}
	return Codec{dobField: dobField}, nil
}

func (c Codec) DOBField() string {
	return c.dobField
}

// Encode renders rec as a JSON object. The id is only written when
// includeID is set; numeric ids are written as JSON numbers.
func (c Codec) Encode(rec employeeform.Record, includeID bool) ([]byte, error) {
	body := map[string]any{
		"firstName":    rec.FirstName,
		"lastName":     rec.LastName,
		"employeeCode": rec.EmployeeCode,
		"contact":      rec.Contact,
		c.dobField:     NormalizeDate(rec.DateOfBirth),
		"address":      rec.Address,
	}
	if includeID && rec.Persisted() {
		if isDigits(rec.ID) {
			body["id"] = json.Number(rec.ID)
		} else {
			body["id"] = rec.ID
		}
	}
	return json.Marshal(body)
}

func (c Codec) Decode(data []byte) (employeeform.Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return employeeform.Record{}, err
	}
	return c.fromRaw(raw)
}

func (c Codec) DecodeList(data []byte) ([]employeeform.Record, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	out := make([]employeeform.Record, 0, len(items))
	for i, raw := range items {
		rec, err := c.fromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c Codec) fromRaw(raw map[string]json.RawMessage) (employeeform.Record, error) {
	var (
		rec employeeform.Record
		err error
	)

	fields := []struct {
		key string
		dst *string
	}{
		{"firstName", &rec.FirstName},
		{"lastName", &rec.LastName},
		{"employeeCode", &rec.EmployeeCode},
		{"contact", &rec.Contact},
		{"address", &rec.Address},
	}
	for _, f := range fields {
		if *f.dst, err = scalar(raw[f.key]); err != nil {
			return rec, fmt.Errorf("field %s: %w", f.key, err)
		}
	}

	if rec.ID, err = scalar(raw["id"]); err != nil {
		return rec, fmt.Errorf("field id: %w", err)
	}

	for _, key := range append([]string{c.dobField}, dobAliases...) {
		v, ok := raw[key]
		if !ok {
			continue
		}
		dob, err := scalar(v)
		if err != nil {
			return rec, fmt.Errorf("field %s: %w", key, err)
		}
		rec.DateOfBirth = TruncateDate(dob)
		break
	}

	return rec, nil
}

// scalar reads a JSON string or number as text; null and missing give "".
func scalar(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", nil
	}
	if v[0] == '"' {
		var s string
		err := json.Unmarshal(v, &s)
		return s, err
	}

	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", string(v))
	}
	return n.String(), nil
}

// TruncateDate keeps the date part of an ISO-8601 timestamp.
func TruncateDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// NormalizeDate renders a parseable date or timestamp as YYYY-MM-DD and
// leaves anything else untouched for the backend to judge.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.DateOnly)
	}
	return TruncateDate(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
