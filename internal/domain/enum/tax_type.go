package enum

import (
	"database/sql/driver"
	"fmt"
)

// TaxType classifies how a receipt line is taxed.
// An empty value is valid on line items and is treated as an implicit VAT line.
type TaxType string

const (
	TaxTypeVAT      TaxType = "VAT"
	TaxTypeTOT      TaxType = "TOT"
	TaxTypeExempted TaxType = "EXEMPTED"
	// TaxTypeMixed is only valid at receipt level, when line items carry
	// differing tax types.
	TaxTypeMixed TaxType = "MIXED"
	TaxTypeNone  TaxType = ""
)

// IsEmpty reports whether no tax type is set.
func (t TaxType) IsEmpty() bool {
	return t == TaxTypeNone
}

// Valid reports whether the value is one of the known tax types.
func (t TaxType) Valid() bool {
	switch t {
	case TaxTypeVAT, TaxTypeTOT, TaxTypeExempted, TaxTypeMixed, TaxTypeNone:
		return true
	}
	return false
}

func (t TaxType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypeNone
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TaxType(v)
	case []byte:
		*t = TaxType(v)
	default:
		return fmt.Errorf("cannot scan %T into TaxType", value)
	}
	return nil
}
