package reconcile

import (
	"fmt"
	"time"
)

// Status is the verdict of a reconciliation.
type Status string

const (
	// StatusSame means both sources hold exactly the same tokens.
	StatusSame Status = "Same"
	// StatusDifferent means at least one token is missing from one side.
	StatusDifferent Status = "Different"
)

// Report represents the reconciliation output for a single owner.
type Report struct {
	// Owner is the address that was reconciled.
	Owner string `json:"owner"`

	// Status is Same or Different.
	Status Status `json:"status"`

	// APICount is the number of tokens reported by the API, duplicates included.
	APICount int `json:"api_count"`

	// LedgerCount is the number of ledger rows, duplicates included.
	LedgerCount int `json:"ledger_count"`

	// IntersectionCount counts API entries that are present in the ledger.
	IntersectionCount int `json:"intersection_count"`

	// OnlyInAPI lists API entries absent from the ledger, in API order.
	OnlyInAPI []string `json:"only_in_api"`

	// OnlyInLedger lists ledger entries absent from the API, in ledger order.
	OnlyInLedger []string `json:"only_in_ledger"`

	// DuplicateAPI lists keys the API reported more than once.
	DuplicateAPI []string `json:"duplicate_api,omitempty"`

	// DuplicateLedger lists keys that appear in more than one ledger row.
	DuplicateLedger []string `json:"duplicate_ledger,omitempty"`

	// Pages is the number of API pages fetched.
	Pages int `json:"pages"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Same reports whether the verdict is Same.
func (r *Report) Same() bool {
	return r.Status == StatusSame
}

// HasDuplicates reports whether either source contained a repeated key.
func (r *Report) HasDuplicates() bool {
	return len(r.DuplicateAPI) > 0 || len(r.DuplicateLedger) > 0
}

// Listing is the ordered token list produced by a source.
type Listing struct {
	// Keys are token identity strings in source order.
	Keys []string

	// Pages is the number of upstream pages read, zero for unpaged sources.
	Pages int
}

// BatchOptions controls multi-owner reconciliation.
type BatchOptions struct {
	// ContinueOnError records a failing owner and moves on instead of aborting.
	ContinueOnError bool

	// Concurrency is the number of owners reconciled at once. Values below 1 mean 1.
	Concurrency int
}

// OwnerResult is the outcome for one owner of a batch.
type OwnerResult struct {
	Owner  string  `json:"owner"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`

	// Err is the failure, if any. Error holds its message for serialization.
	Err error `json:"-"`
}

// SourceError wraps a failure of one source while reconciling an owner.
type SourceError struct {
	Owner  string
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("reconcile %s: %s source: %v", e.Owner, e.Source, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SourceError) Unwrap() error {
	return e.Err
}
