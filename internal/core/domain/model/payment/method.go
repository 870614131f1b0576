package payment

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Method describes how an order was paid.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Cash is paid with physical money and may produce change.
	Cash

	// Card is paid by debit or credit card.
	Card

	// MobileWalletA is paid through the first supported wallet app.
	MobileWalletA

	// MobileWalletB is paid through the second supported wallet app.
	MobileWalletB

	// BankTransfer is paid by direct bank transfer.
	BankTransfer
)

func methodStrings() map[Method]string {
	return map[Method]string{
		Cash:          "cash",
		Card:          "card",
		MobileWalletA: "mobile_wallet_a",
		MobileWalletB: "mobile_wallet_b",
		BankTransfer:  "bank_transfer",
	}
}

// MethodFromString parses the wire representation of a payment method.
// Only exact lowercase names are accepted.
func MethodFromString(s string) (Method, error) {
	for m, str := range methodStrings() {
		if str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire name of the method, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (m Method) String() string {
	if s, ok := methodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate returns an error for values outside the defined methods.
func (m Method) Validate() error {
	if _, ok := methodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// IsCash reports whether the method settles with physical money. Only cash
// payments carry a received amount and change.
func (m Method) IsCash() bool {
	return m == Cash
}
