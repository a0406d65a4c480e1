package client

import "github.com/BruksfildServices01/mapa-clientes/internal/normalize"

// MaxBulkCodes caps a bulk lookup after deduplication.
const MaxBulkCodes = 2000

// DedupeCodes trims every raw value, drops blanks and removes exact
// duplicates, keeping first-occurrence order. Comparison is case-sensitive.
func DedupeCodes(raw []any) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		code := normalize.ToStr(v)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Strings adapts a string slice for DedupeCodes.
func Strings(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
