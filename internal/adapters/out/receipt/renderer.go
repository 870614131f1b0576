// Package receipt renders payment receipts as fixed width plain text,
// suitable for 40 column thermal printers.
package receipt

import (
	"fmt"
	"strings"

	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/payment"
)

const (
	divider = "========================================"
	rule    = "----------------------------------------"

	// currencyPrefix precedes every amount on the printed ticket.
	currencyPrefix = "S/."
)

// Render produces the printable text of a sales receipt. The ticket read
// model carries the payment, the order read model carries the lines.
// Received and change rows appear only for cash payments.
func Render(ticket queries.GetTicketQueryResponse, order queries.GetOrderQueryResponse) string {
	var b strings.Builder

	b.WriteString(divider + "\n")
	b.WriteString("             SALES RECEIPT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Ticket #: %s\n", ticket.Ticket)
	fmt.Fprintf(&b, "Order  #: %s\n", ticket.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n", ticket.PaidAt.Format("02/01/2006 15:04"))
	b.WriteString(rule + "\n")
	b.WriteString("ITEMS:\n")

	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%dx %-20s %s%s\n",
			line.Quantity, line.ItemName, currencyPrefix, line.Subtotal.String())
		if line.Note != "" {
			fmt.Fprintf(&b, "   Note: %s\n", line.Note)
		}
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL:                    %s%s\n", currencyPrefix, ticket.Amount.String())
	fmt.Fprintf(&b, "Payment method:           %s\n", strings.ToUpper(ticket.Method))

	if ticket.Method == payment.Cash.String() {
		fmt.Fprintf(&b, "Received:                 %s%s\n", currencyPrefix, ticket.Received.String())
		fmt.Fprintf(&b, "Change:                   %s%s\n", currencyPrefix, ticket.Change.String())
	}

	b.WriteString(divider + "\n")
	b.WriteString("       THANK YOU FOR YOUR VISIT!\n")
	b.WriteString(divider + "\n")

	return b.String()
}
