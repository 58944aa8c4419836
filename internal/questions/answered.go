package questions

// Answered is a question that was actually presented in a session together
// with the user's choice on the 1..5 scale.
type Answered struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
	Example    string `json:"example,omitempty"`
	Answer     int    `json:"answer"`
}

// NeutralAnswer is the midpoint of the scale, used wherever an answer is
// missing or unreadable.
const NeutralAnswer = 3

// ValidAnswer reports whether a is on the 1..5 scale.
func ValidAnswer(a int) bool {
	return a >= 1 && a <= 5
}

// AnswerOrNeutral returns a if it is on the scale, NeutralAnswer otherwise.
func AnswerOrNeutral(a int) int {
	if ValidAnswer(a) {
		return a
	}
	return NeutralAnswer
}
