package cli

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// grouped formats integers with thousands separators
var grouped = message.NewPrinter(language.English)

// WriteReport prints the human readable summary of a saved balance
func WriteReport(w io.Writer, result *services.SavedBalance) {
	r := result.Record

	fmt.Fprintln(w)
	if result.Path != "" {
		fmt.Fprintf(w, "Balance information saved to: %s\n", result.Path)
	}
	fmt.Fprintf(w, "Network: %s\n", r.Network)
	fmt.Fprintf(w, "Balance: %.8f BTC\n", r.BalanceBTC)
	fmt.Fprintf(w, "Satoshis: %s\n", grouped.Sprintf("%d", r.BalanceSatoshis))
	fmt.Fprintf(w, "Total Received: %s satoshis\n", grouped.Sprintf("%d", r.TotalReceived))
	fmt.Fprintf(w, "Total Sent: %s satoshis\n", grouped.Sprintf("%d", r.TotalSent))
	fmt.Fprintf(w, "Transactions: %d\n", r.TransactionCount)
}

// WriteFailure prints the message for a failed lookup
func WriteFailure(w io.Writer, err error) {
	if errors.Is(err, entities.ErrEmptyAddress) {
		fmt.Fprintln(w, "Error: No address provided!")
		return
	}

	var fe *entities.FetchError
	switch {
	case !errors.As(err, &fe):
		fmt.Fprintf(w, "Error: %v\n", err)
	case fe.Kind == entities.KindNetwork:
		fmt.Fprintf(w, "Error: Failed to fetch data - %v\n", fe.Err)
	case fe.Kind == entities.KindResponseFormat:
		fmt.Fprintf(w, "Error: Unexpected API response format - %s\n", fe.Key)
	default:
		fmt.Fprintf(w, "Error: %v\n", fe.Err)
	}
	fmt.Fprintln(w, "Failed to get balance information")
}
