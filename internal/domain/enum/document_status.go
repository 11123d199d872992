package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentStatus tracks the review state of an uploaded document
type DocumentStatus int

const (
	DocumentStatusPending  DocumentStatus = 0
	DocumentStatusApproved DocumentStatus = 1
	DocumentStatusRejected DocumentStatus = 2
)

func (s DocumentStatus) String() string {
	names := [...]string{"Pending", "Approved", "Rejected"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocumentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = DocumentStatusPending
	case "Approved":
		*s = DocumentStatusApproved
	case "Rejected":
		*s = DocumentStatusRejected
	}
	return nil
}

func (s DocumentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DocumentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DocumentStatus(v)
	case int:
		*s = DocumentStatus(v)
	}
	return nil
}
