package model

// Location is a geographic point with an optional human-readable address
type Location struct {
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`
	Address string  `json:"address,omitempty" firestore:"address"`
}

// uniqueStrings returns values with duplicates and empty entries removed, preserving order
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}
