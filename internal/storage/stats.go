package storage

import "time"

// Stats summarizes every recorded game.
type Stats struct {
	Games      int
	Best       int
	Average    float64
	LastPlayed time.Time // zero when unknown
}

type statser interface {
	Stats() (Stats, error)
}

// Summarize returns Stats for s, asking the backend when it can aggregate
// natively and folding the full leaderboard otherwise.
func Summarize(s ScoreStore) (Stats, error) {
	if st, ok := s.(statser); ok {
		return st.Stats()
	}

	entries, err := s.Leaderboard(0)
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	total := 0
	for _, e := range entries {
		st.Games++
		total += e.Score
		if e.Score > st.Best {
			st.Best = e.Score
		}
	}
	if st.Games > 0 {
		st.Average = float64(total) / float64(st.Games)
	}
	return st, nil
}
