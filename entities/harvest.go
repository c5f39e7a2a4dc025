package entities

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// HarvestMonths is persisted as a JSON array of month names in one text column.
//
// Decoding is lenient: a NULL, empty or malformed column reads back as an
// empty list. That makes "never set" and "unreadable" look the same, which is
// accepted for this column.
type HarvestMonths []string

func (m HarvestMonths) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *HarvestMonths) Scan(src any) error {
	*m = DecodeHarvestMonths(src)
	return nil
}

// String joins the months with ", " for spreadsheet cells and tables.
func (m HarvestMonths) String() string { return strings.Join(m, ", ") }

func DecodeHarvestMonths(src any) HarvestMonths {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return HarvestMonths{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return HarvestMonths{}
	}
	return HarvestMonths(out)
}
