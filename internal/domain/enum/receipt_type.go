package enum

import (
	"database/sql/driver"
	"fmt"
)

// ReceiptType identifies which data-entry flow produced a receipt.
type ReceiptType string

const (
	ReceiptTypeLocal     ReceiptType = "local"
	ReceiptTypeImport    ReceiptType = "import"
	ReceiptTypeExport    ReceiptType = "export"
	ReceiptTypeWarehouse ReceiptType = "warehouse"
)

// Valid reports whether the value is one of the known receipt types.
func (r ReceiptType) Valid() bool {
	switch r {
	case ReceiptTypeLocal, ReceiptTypeImport, ReceiptTypeExport, ReceiptTypeWarehouse:
		return true
	}
	return false
}

func (r ReceiptType) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *ReceiptType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*r = ReceiptType(v)
	case []byte:
		*r = ReceiptType(v)
	default:
		return fmt.Errorf("cannot scan %T into ReceiptType", value)
	}
	return nil
}
