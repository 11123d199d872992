package vat

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
)

// CalculateVATSummary classifies every line item of every receipt by nature
// code and accumulates totals, VAT and item counts per code. It is a pure
// function over its inputs: receipts are never mutated and repeated calls
// yield identical output.
//
// Classification, per line item in receipt-then-item order:
//   - codes in the VAT exclusion set: subtotal counts, VAT contribution is
//     forced to zero no matter what tax amount is present
//   - TOT lines: the turnover tax is folded into the displayed total
//     (subtotal + tax amount) and must never inflate the VAT column
//   - everything else: subtotal counts; the tax amount counts as VAT for
//     VAT lines and for lines with no tax type (implicit VAT), and as zero
//     for any other type such as EXEMPTED
func CalculateVATSummary(receipts []Receipt) *Summary {
	summary := &Summary{Codes: make(map[string]*SummaryData)}

	for _, receipt := range receipts {
		for _, item := range receipt.Items {
			nature := item.Nature
			data, ok := summary.Codes[nature]
			if !ok {
				data = &SummaryData{
					Total: decimal.Zero,
					VAT:   decimal.Zero,
				}
				summary.Codes[nature] = data
			}

			if _, mapped := NatureCodeTable[nature]; !mapped {
				summary.UnmappedItems++
			}

			switch {
			case IsVATExcluded(nature):
				data.Total = data.Total.Add(item.Subtotal)

			case item.EffectiveTaxType() == enum.TaxTypeTOT:
				data.Total = data.Total.Add(item.Subtotal).Add(item.TaxAmount)

			default:
				data.Total = data.Total.Add(item.Subtotal)
				taxType := item.EffectiveTaxType()
				if taxType == enum.TaxTypeVAT || taxType.IsEmpty() {
					data.VAT = data.VAT.Add(item.TaxAmount)
				}
			}

			data.Count++
			appendReceiptOnce(data, receipt)
		}
	}

	return summary
}

// SortedCodes returns the summary's nature codes in ascending string order,
// for stable display and iteration.
func SortedCodes(summary *Summary) []string {
	codes := make([]string, 0, len(summary.Codes))
	for code := range summary.Codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// appendReceiptOnce records the parent receipt in the code's receipt list at
// most once, so a receipt with several items under the same nature code
// appears a single time.
func appendReceiptOnce(data *SummaryData, receipt Receipt) {
	for _, r := range data.Receipts {
		if r.ID == receipt.ID {
			return
		}
	}
	data.Receipts = append(data.Receipts, receipt)
}
