package feedback

import "github.com/BruksfildServices01/home-services/internal/models"

type Stats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ComputeStats averages the ratings, rounded half up to one decimal.
func ComputeStats(items []models.Feedback) Stats {
	n := len(items)
	if n == 0 {
		return Stats{}
	}

	sum := 0
	for _, f := range items {
		sum += f.Rating
	}

	// Integer arithmetic keeps 4.25 -> 4.3 exact.
	tenths := (20*sum + n) / (2 * n)
	return Stats{
		Count:   n,
		Average: float64(tenths) / 10,
	}
}
