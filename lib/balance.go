package lib

import (
	"fmt"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var two = decimal.NewFromInt(2)

// ComputeBalance sums the contributions of every record in the input and
// returns the net balance. The caller is expected to pass the records for a
// single person (see ForPerson); this function does not group by person.
//
// Contributions: "They Paid" subtracts the amount (they covered you),
// "Split" adds half, and "I Paid" adds the full amount. A positive result
// means the counterparty owes the user; negative means the user owes them.
// Records with an unknown status contribute nothing.
func ComputeBalance(rs RecordSet) decimal.Decimal {
	total := decimal.Zero

	for i := range rs {
		switch rs[i].Status {
		case c.StatusTheyPaid:
			total = total.Sub(rs[i].Amount.Decimal)
		case c.StatusSplit:
			total = total.Add(rs[i].Amount.Div(two))
		case c.StatusIPaid:
			total = total.Add(rs[i].Amount.Decimal)
		}
	}

	return total
}

// FormatBalanceLabel renders a balance as one of three human-readable
// forms: "Owes you ₹120", "You owe ₹200", or "All settled". The displayed
// magnitude is rounded half away from zero to the nearest whole rupee, so
// a split of ₹99 shows as ₹50 rather than ₹49.50.
func FormatBalanceLabel(balance decimal.Decimal) string {
	if balance.IsZero() {
		return "All settled"
	}

	if balance.IsPositive() {
		return fmt.Sprintf("Owes you %v", FormatAsCurrency(balance))
	}

	return fmt.Sprintf("You owe %v", FormatAsCurrency(balance.Abs()))
}

// FormatAsCurrency renders a decimal as a whole-rupee currency string with
// grouped digits, e.g. "₹1,200". Rounding is half away from zero.
func FormatAsCurrency(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("%v%d", c.CurrencySymbol, d.Round(0).IntPart())
}
