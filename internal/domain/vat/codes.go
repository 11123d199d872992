package vat

import (
	"sort"
	"strconv"
)

// Section identifies which block of the VAT declaration a nature code
// reports under.
type Section string

const (
	SectionOutput     Section = "output"
	SectionCapital    Section = "capital"
	SectionNonCapital Section = "nonCapital"
)

// NatureCode describes how a nature code maps onto the declaration form.
// VATLine is the statutory line number of the code's VAT cell; zero means
// the code has no VAT cell of its own.
type NatureCode struct {
	Section Section
	Label   string
	VATLine int
}

// NatureCodeTable maps each nature code to its reporting section and VAT
// line. Loaded once at process start, never mutated.
var NatureCodeTable = map[string]NatureCode{
	// Output (sales) section
	"5":  {Section: SectionOutput, Label: "Taxable local sales", VATLine: 10},
	"10": {Section: SectionOutput, Label: "Taxable services rendered", VATLine: 15},
	"15": {Section: SectionOutput, Label: "Zero-rated sales"},
	"20": {Section: SectionOutput, Label: "Exempt sales"},
	"25": {Section: SectionOutput, Label: "Sales against government voucher", VATLine: 30},
	// Capital input section
	"50": {Section: SectionCapital, Label: "Local capital asset purchases", VATLine: 110},
	"55": {Section: SectionCapital, Label: "Imported capital assets", VATLine: 115},
	// Non-capital input section
	"60": {Section: SectionNonCapital, Label: "Local purchase inputs", VATLine: 125},
	"65": {Section: SectionNonCapital, Label: "Imported inputs", VATLine: 130},
	"70": {Section: SectionNonCapital, Label: "Purchases from TOT suppliers"},
	"75": {Section: SectionNonCapital, Label: "Exempt purchases"},
}

// excludeVATCodes holds nature codes whose VAT contribution is always zero,
// even when a tax amount is present on the line. Their subtotal still counts
// toward the section total.
var excludeVATCodes = map[string]struct{}{
	"15": {},
	"20": {},
	"70": {},
	"75": {},
}

// IsVATExcluded reports whether the nature code must never contribute to any
// VAT accumulator.
func IsVATExcluded(nature string) bool {
	_, ok := excludeVATCodes[nature]
	return ok
}

// Lookup returns the mapping entry for a nature code, if one exists.
func Lookup(nature string) (NatureCode, bool) {
	nc, ok := NatureCodeTable[nature]
	return nc, ok
}

// TableCodes returns every mapped nature code in numeric order.
func TableCodes() []string {
	codes := make([]string, 0, len(NatureCodeTable))
	for code := range NatureCodeTable {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		a, _ := strconv.Atoi(codes[i])
		b, _ := strconv.Atoi(codes[j])
		return a < b
	})
	return codes
}
