package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FilingStatus tracks the lifecycle of a saved VAT filing
type FilingStatus int

const (
	FilingStatusDraft     FilingStatus = 0
	FilingStatusSubmitted FilingStatus = 1
)

func (s FilingStatus) String() string {
	names := [...]string{"Draft", "Submitted"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

func (s FilingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FilingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = FilingStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = FilingStatusDraft
	case "Submitted":
		*s = FilingStatusSubmitted
	}
	return nil
}

func (s FilingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *FilingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = FilingStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = FilingStatus(v)
	case int:
		*s = FilingStatus(v)
	}
	return nil
}
