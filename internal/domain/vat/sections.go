package vat

// CalculateSectionTotals rolls the per-nature-code summary up into the three
// declaration sections. Only codes present in NatureCodeTable participate;
// unmapped codes are skipped without error. When an override pair exists for
// a code it replaces the computed (total, vat), but the exclusion rule is
// re-enforced: an override can never reintroduce VAT for an excluded code.
// Item counts are taken from the summary and are not overridable.
func CalculateSectionTotals(summary *Summary, overrides EditableValues) SectionTotals {
	var totals SectionTotals

	for nature, data := range summary.Codes {
		mapping, ok := NatureCodeTable[nature]
		if !ok {
			continue
		}
		bucket := totals.bucketFor(mapping.Section)
		if bucket == nil {
			continue
		}

		total, vat := data.Total, data.VAT
		if override, ok := overrides[nature]; ok {
			total, vat = override.Total, override.VAT
		}

		bucket.Total = bucket.Total.Add(total)
		if !IsVATExcluded(nature) {
			bucket.VAT = bucket.VAT.Add(vat)
		}
		bucket.Count += data.Count
	}

	return totals
}
