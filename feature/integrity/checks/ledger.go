package checks

import (
	"fmt"
	"reflect"
	"strings"

	"nft-reconciler/core/database"
	"nft-reconciler/core/ledger"

	"gorm.io/gorm"
)

// LedgerReport strictly types the result of a ledger schema check.
type LedgerReport struct {
	Table              string   `json:"table"`
	Matched            bool     `json:"matched"`
	MissingColumns     []string `json:"missing_columns"`
	PositionMismatches []string `json:"position_mismatches"`
	Errors             []string `json:"errors"`
}

// ExpectedColumns returns the ledger columns in the order the reader expects
// them, taken from the gorm tags of ledger.OwnerRecord.
func ExpectedColumns() []string {
	t := reflect.TypeOf(ledger.OwnerRecord{})

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		if col := parseGormColumn(t.Field(i).Tag.Get("gorm")); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// CheckLedgerSchema verifies the ledger table using ledger.OwnerRecord as the
// source of truth. The reader addresses columns by position, so each expected
// column must also sit at its expected index.
func CheckLedgerSchema(db *gorm.DB, table string) (*LedgerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		table = ledger.DefaultTable
	}

	report := &LedgerReport{
		Table:              table,
		Matched:            true,
		MissingColumns:     []string{},
		PositionMismatches: []string{},
		Errors:             []string{},
	}

	actualCols, err := database.GetTableColumns(db, table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
		report.Matched = false
		return report, nil // Partial fail
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("table %s does not exist or has no columns", table))
		report.Matched = false
		return report, nil
	}

	positions := make(map[string]int, len(actualCols))
	for i, col := range actualCols {
		positions[col.Field] = i
	}

	for want, col := range ExpectedColumns() {
		got, exists := positions[col]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, col)
			report.Matched = false
			continue
		}
		if got != want {
			report.PositionMismatches = append(report.PositionMismatches,
				fmt.Sprintf("%s: expected position %d, got %d", col, want, got))
			report.Matched = false
		}
	}

	return report, nil
}

// parseGormColumn extracts the column name from a simple gorm tag.
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}
