// Package trips loads station ridership records from tabular data.
//
// The expected input is a CSV file with a header row naming three columns:
//
//	name,code,count
//	Downtown Berkeley,BK,"12,345"
//
// Count values may carry thousands-separator punctuation, which is stripped
// before parsing. Records are returned sorted ascending by count so callers
// can draw short spokes before long ones; ties preserve source order.
//
// A malformed row aborts the whole load rather than being skipped, so a bad
// dataset is never silently misrepresented.
package trips

// Station is one destination station's aggregate ridership for the
// reporting period. Records are immutable after construction.
type Station struct {
	Name  string `json:"name"`  // human-readable station name
	Code  string `json:"code"`  // short station identifier, typically 2 characters
	Count int    `json:"count"` // non-negative trip count for the period
}

// MaxCount returns the largest trip count among records.
// It returns 0 for an empty slice.
func MaxCount(records []Station) int {
	max := 0
	for _, r := range records {
		if r.Count > max {
			max = r.Count
		}
	}
	return max
}
