package selector

// recentWindow is how many of the latest answers make up the recent trend.
const recentWindow = 3

// Stats summarizes the answers given so far in a session.
type Stats struct {
	Count         int     `json:"count"`
	Average       float64 `json:"average"`
	RecentAverage float64 `json:"recentAverage"`
	Variance      float64 `json:"variance"`
	Left          int     `json:"left"`   // answers 1-2
	Middle        int     `json:"middle"` // answer 3
	Right         int     `json:"right"`  // answers 4-5
}

// Trend is the recent average minus the overall average. Positive values
// mean the latest answers lean further right than the session as a whole.
func (s Stats) Trend() float64 {
	return s.RecentAverage - s.Average
}

// Summarize computes Stats over answers in session order. With no answers
// every figure is zero.
func Summarize(answers []int) Stats {
	st := Stats{Count: len(answers)}
	if len(answers) == 0 {
		return st
	}

	sum := 0
	for _, a := range answers {
		sum += a
		switch {
		case a <= 2:
			st.Left++
		case a >= 4:
			st.Right++
		default:
			st.Middle++
		}
	}
	st.Average = float64(sum) / float64(len(answers))

	var sq float64
	for _, a := range answers {
		diff := float64(a) - st.Average
		sq += diff * diff
	}
	st.Variance = sq / float64(len(answers))

	recent := answers
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	rsum := 0
	for _, a := range recent {
		rsum += a
	}
	st.RecentAverage = float64(rsum) / float64(len(recent))

	return st
}
