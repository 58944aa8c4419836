package report

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/templates"
)

// Placeholder labels for questions whose label line is missing.
const (
	DefaultLeftLabel  = "左の選択肢"
	DefaultRightLabel = "右の選択肢"
)

var (
	questionLine = regexp.MustCompile(`^(\d+)\.\s*(.+)`)
	answerMarker = regexp.MustCompile(`回答:\s*(\d)点`)
	leftMarker   = regexp.MustCompile(`左:\s*([^(]+)`)
	rightMarker  = regexp.MustCompile(`右:\s*([^(]+)`)
	exampleLine  = regexp.MustCompile(`具体例:\s*(.*)`)
)

// Entry is one question recovered from a transcript. Answer is 0 when the
// transcript carried no answer marker for it.
type Entry struct {
	Number     int
	Text       string
	Example    string
	LeftLabel  string
	RightLabel string
	Answer     int
}

// Transcript is the parsed form of a submitted session.
type Transcript struct {
	Entries []Entry
}

// ParseTranscript reads the line-oriented transcript format. Lines that
// match nothing are skipped, and markers that appear before the first
// question line are ignored.
func ParseTranscript(text string) Transcript {
	var t Transcript
	var cur *Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := questionLine.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				t.Entries = append(t.Entries, Entry{Number: n, Text: strings.TrimSpace(m[2])})
				cur = &t.Entries[len(t.Entries)-1]
				continue
			}
		}
		if cur == nil {
			continue
		}
		if m := answerMarker.FindStringSubmatch(line); m != nil {
			cur.Answer, _ = strconv.Atoi(m[1])
		}
		if m := leftMarker.FindStringSubmatch(line); m != nil {
			cur.LeftLabel = strings.TrimSpace(m[1])
		}
		if m := rightMarker.FindStringSubmatch(line); m != nil {
			cur.RightLabel = strings.TrimSpace(m[1])
		}
		if m := exampleLine.FindStringSubmatch(line); m != nil {
			cur.Example = strings.TrimSpace(m[1])
		}
	}
	return t
}

// HasAnswers reports whether at least one entry carries an on-scale answer.
func (t Transcript) HasAnswers() bool {
	for _, e := range t.Entries {
		if questions.ValidAnswer(e.Answer) {
			return true
		}
	}
	return false
}

// History converts the entries to answered questions. Missing or
// off-scale answers become neutral. Question ids are not part of the
// transcript, so rules are resolved by text.
func (t Transcript) History() []questions.Answered {
	out := make([]questions.Answered, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = questions.Answered{
			Text:       e.Text,
			LeftLabel:  e.LeftLabel,
			RightLabel: e.RightLabel,
			Example:    e.Example,
			Answer:     questions.AnswerOrNeutral(e.Answer),
		}
	}
	return out
}

// FormatTranscript renders history in the format ParseTranscript reads.
// Questions are numbered by position.
func FormatTranscript(r templates.Renderer, history []questions.Answered) (string, error) {
	data := templates.TranscriptData{Count: len(history)}
	for i, h := range history {
		a := questions.AnswerOrNeutral(h.Answer)
		data.Entries = append(data.Entries, templates.TranscriptEntry{
			Number:     i + 1,
			Text:       h.Text,
			Example:    h.Example,
			LeftLabel:  h.LeftLabel,
			RightLabel: h.RightLabel,
			Answer:     a,
			Lean:       lean(a),
		})
	}
	return r.Render(templates.Transcript, data)
}

func lean(a int) string {
	switch {
	case a <= 2:
		return "左寄り"
	case a >= 4:
		return "右寄り"
	default:
		return "中間"
	}
}
