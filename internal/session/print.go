package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/talgya/tradegoods/internal/cargo"
	"github.com/talgya/tradegoods/internal/entropy"
)

// PrintOffers writes one line per offer, flagging special goods.
func PrintOffers(w io.Writer, offers []cargo.Offer) {
	for _, o := range offers {
		fmt.Fprintf(w, "In this town you find %s with a base price of %s and a cargo size of %d\n",
			o.Product, o.BasePrice, o.Size)
		if o.Special() {
			fmt.Fprintf(w, "%s is special\n", strings.ToUpper(o.Product[:1])+o.Product[1:])
		}
	}
}

// PrintRolls writes the roll summary.
func PrintRolls(w io.Writer, log *entropy.Log) {
	fmt.Fprintln(w, "\nRolls Summary:")
	for _, r := range log.Records() {
		fmt.Fprintln(w, r.String())
	}
}

// PrintVisit writes the offers of a non-interactive visit followed by the
// roll summary.
func PrintVisit(w io.Writer, v cargo.Visit) {
	if !v.Available || len(v.Offers) == 0 {
		fmt.Fprintln(w, "No cargo available for sale.")
	} else {
		PrintOffers(w, v.Offers)
	}
	PrintRolls(w, v.Log)
}
