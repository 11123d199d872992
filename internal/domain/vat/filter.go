package vat

import "time"

// FilterReceiptsByMonth keeps receipts whose date falls in the given
// calendar month. Month is 1-indexed. Receipts with malformed dates are
// dropped. An empty result is a valid, non-exceptional output.
func FilterReceiptsByMonth(receipts []Receipt, month time.Month, year int) []Receipt {
	out := make([]Receipt, 0, len(receipts))
	for _, r := range receipts {
		d, ok := r.ParsedDate()
		if !ok {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, r)
		}
	}
	return out
}

// FilterReceiptsByDateRange keeps receipts dated within [start, end],
// inclusive on both ends. The start boundary is normalized to 00:00:00.000
// and the end boundary to 23:59:59.999 of its calendar day.
func FilterReceiptsByDateRange(receipts []Receipt, start, end time.Time) []Receipt {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())

	out := make([]Receipt, 0, len(receipts))
	for _, r := range receipts {
		d, ok := r.ParsedDate()
		if !ok {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			out = append(out, r)
		}
	}
	return out
}
