package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name             string
		api              []string
		ledger           []string
		wantStatus       Status
		wantIntersection int
		wantOnlyInAPI    []string
		wantOnlyInLedger []string
	}{
		{
			name:             "Same set, different order",
			api:              []string{"0xA|1", "0xB|2"},
			ledger:           []string{"0xB|2", "0xA|1"},
			wantStatus:       StatusSame,
			wantIntersection: 2,
			wantOnlyInAPI:    []string{},
			wantOnlyInLedger: []string{},
		},
		{
			name:             "Missing from ledger",
			api:              []string{"0xA|1", "0xB|2"},
			ledger:           []string{"0xB|2"},
			wantStatus:       StatusDifferent,
			wantIntersection: 1,
			wantOnlyInAPI:    []string{"0xA|1"},
			wantOnlyInLedger: []string{},
		},
		{
			name:             "Empty API",
			api:              []string{},
			ledger:           []string{"0xC|3"},
			wantStatus:       StatusDifferent,
			wantIntersection: 0,
			wantOnlyInAPI:    []string{},
			wantOnlyInLedger: []string{"0xC|3"},
		},
		{
			name:             "Both empty",
			wantStatus:       StatusSame,
			wantOnlyInAPI:    []string{},
			wantOnlyInLedger: []string{},
		},
		{
			name:             "Differences keep source order",
			api:              []string{"0xZ|9", "0xA|1", "0xY|8"},
			ledger:           []string{"0xQ|5", "0xA|1", "0xP|4"},
			wantStatus:       StatusDifferent,
			wantIntersection: 1,
			wantOnlyInAPI:    []string{"0xZ|9", "0xY|8"},
			wantOnlyInLedger: []string{"0xQ|5", "0xP|4"},
		},
		{
			name:             "Keys are case sensitive",
			api:              []string{"0xabc|1"},
			ledger:           []string{"0xABC|1"},
			wantStatus:       StatusDifferent,
			wantIntersection: 0,
			wantOnlyInAPI:    []string{"0xabc|1"},
			wantOnlyInLedger: []string{"0xABC|1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare("owner", tt.api, tt.ledger)

			assert.Equal(t, "owner", report.Owner)
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, tt.wantIntersection, report.IntersectionCount)
			assert.Equal(t, len(tt.api), report.APICount)
			assert.Equal(t, len(tt.ledger), report.LedgerCount)
			assert.Equal(t, tt.wantOnlyInAPI, report.OnlyInAPI)
			assert.Equal(t, tt.wantOnlyInLedger, report.OnlyInLedger)
		})
	}
}

func TestCompare_Duplicates(t *testing.T) {
	t.Run("Duplicate on one side is Different", func(t *testing.T) {
		report := Compare("owner", []string{"0xA|1", "0xA|1"}, []string{"0xA|1"})

		assert.Equal(t, StatusDifferent, report.Status)
		assert.Equal(t, 2, report.IntersectionCount)
		assert.Empty(t, report.OnlyInAPI)
		assert.Empty(t, report.OnlyInLedger)
		assert.Equal(t, []string{"0xA|1"}, report.DuplicateAPI)
		assert.Nil(t, report.DuplicateLedger)
	})

	t.Run("Matching duplicate counts can still be Same", func(t *testing.T) {
		report := Compare("owner",
			[]string{"0xA|1", "0xA|1"},
			[]string{"0xA|1", "0xB|2"},
		)

		// Every API entry is in the ledger and the lengths match, although
		// 0xB|2 never appears in the API list.
		assert.Equal(t, StatusSame, report.Status)
		assert.Empty(t, report.OnlyInAPI)
		assert.Equal(t, []string{"0xB|2"}, report.OnlyInLedger)
		assert.True(t, report.HasDuplicates())
	})

	t.Run("Repeated key listed once", func(t *testing.T) {
		report := Compare("owner", nil, []string{"0xA|1", "0xB|2", "0xA|1", "0xA|1", "0xB|2"})
		assert.Equal(t, []string{"0xA|1", "0xB|2"}, report.DuplicateLedger)
	})
}
