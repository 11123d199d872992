// Package refdata holds the static reference lists the data-entry forms
// consume. All tables are immutable package-level values loaded once at
// process start.
package refdata

// BankNames lists the banks selectable on receipt payment details.
var BankNames = []string{
	"Commercial Bank of Ethiopia",
	"Awash Bank",
	"Dashen Bank",
	"Bank of Abyssinia",
	"Wegagen Bank",
	"United Bank",
	"Nib International Bank",
	"Cooperative Bank of Oromia",
	"Zemen Bank",
	"Oromia International Bank",
	"Bunna Bank",
	"Berhan Bank",
	"Abay Bank",
	"Addis International Bank",
	"Debub Global Bank",
	"Enat Bank",
}

// PaymentMethods lists the accepted receipt payment methods.
var PaymentMethods = []string{
	"Cash",
	"Cheque",
	"Bank Transfer",
	"CPO",
	"Mobile Money",
	"Credit",
}

// ValidBankName reports whether the name is in the bank list.
func ValidBankName(name string) bool {
	for _, b := range BankNames {
		if b == name {
			return true
		}
	}
	return false
}

// ValidPaymentMethod reports whether the method is in the payment list.
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
