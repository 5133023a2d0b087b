package reconcile

// Compare diffs the API token list against the ledger token list.
// Membership is tested per occurrence against the other side's set, so
// duplicates do not change the verdict; they are only listed.
func Compare(owner string, apiTokens, ledgerTokens []string) *Report {
	apiSet := toSet(apiTokens)
	ledgerSet := toSet(ledgerTokens)

	report := &Report{
		Owner:        owner,
		APICount:     len(apiTokens),
		LedgerCount:  len(ledgerTokens),
		OnlyInAPI:    []string{},
		OnlyInLedger: []string{},
	}

	for _, key := range apiTokens {
		if _, ok := ledgerSet[key]; ok {
			report.IntersectionCount++
		} else {
			report.OnlyInAPI = append(report.OnlyInAPI, key)
		}
	}

	for _, key := range ledgerTokens {
		if _, ok := apiSet[key]; !ok {
			report.OnlyInLedger = append(report.OnlyInLedger, key)
		}
	}

	report.DuplicateAPI = duplicates(apiTokens)
	report.DuplicateLedger = duplicates(ledgerTokens)

	if report.IntersectionCount == report.APICount && report.APICount == report.LedgerCount {
		report.Status = StatusSame
	} else {
		report.Status = StatusDifferent
	}

	return report
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// duplicates returns each repeated key once, in order of its second occurrence.
func duplicates(keys []string) []string {
	seen := make(map[string]int, len(keys))
	var dups []string
	for _, key := range keys {
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}
