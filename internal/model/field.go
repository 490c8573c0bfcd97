package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FieldType : kind of annotation placed on a page
type FieldType string

const (
	FieldSignature FieldType = "signature"
	FieldDate      FieldType = "date"
	FieldText      FieldType = "text"
)

// Valid reports whether t is one of the supported field types
func (t FieldType) Valid() bool {
	switch t {
	case FieldSignature, FieldDate, FieldText:
		return true
	}
	return false
}

// Field : placed annotation. Position is stored as a fraction of the page size,
// width/height are pixels at the zoom level active during placement.
type Field struct {
	ID     string    `json:"id"`
	Type   FieldType `json:"type"`
	Page   int       `json:"page"`
	XRatio float64   `json:"xRatio"`
	YRatio float64   `json:"yRatio"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// FieldList : jsonb column with the finalized fields of a signing session
type FieldList []Field

// HasSignature : true when at least one signature field is present
func (l FieldList) HasSignature() bool {
	for _, f := range l {
		if f.Type == FieldSignature {
			return true
		}
	}
	return false
}

func (l FieldList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *FieldList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = FieldList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for FieldList: %T", src)
	}
	return json.Unmarshal(data, l)
}
