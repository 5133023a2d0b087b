package reconcile

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints the verdict, followed by the difference lists when they
// are non-empty.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (api=%d ledger=%d intersection=%d pages=%d)\n",
		r.Owner, r.Status, r.APICount, r.LedgerCount, r.IntersectionCount, r.Pages)

	if len(r.OnlyInAPI) > 0 {
		fmt.Fprintf(&b, "  only in api: %s\n", strings.Join(r.OnlyInAPI, ", "))
	}
	if len(r.OnlyInLedger) > 0 {
		fmt.Fprintf(&b, "  only in ledger: %s\n", strings.Join(r.OnlyInLedger, ", "))
	}
	if len(r.DuplicateAPI) > 0 {
		fmt.Fprintf(&b, "  duplicated in api: %s\n", strings.Join(r.DuplicateAPI, ", "))
	}
	if len(r.DuplicateLedger) > 0 {
		fmt.Fprintf(&b, "  duplicated in ledger: %s\n", strings.Join(r.DuplicateLedger, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
