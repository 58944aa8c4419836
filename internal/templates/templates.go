// Package templates renders the free-text parts of a quiz session: the
// transcript a client submits for scoring and the advice narrative of a
// report.
//
// Templates are embedded in the binary and parsed once by NewRenderer.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templateFS embed.FS

// Template names.
const (
	Transcript = "transcript.txt.tmpl"
	Advice     = "advice.md.tmpl"
)

// Renderer renders a named template with the given data.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// EmbedRenderer renders the embedded templates.
type EmbedRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*EmbedRenderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &EmbedRenderer{tmpl: tmpl}, nil
}

// Render executes the template called name.
func (r *EmbedRenderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// --- Template data ---

// TranscriptData feeds the Transcript template.
type TranscriptData struct {
	Count   int
	Entries []TranscriptEntry
}

// TranscriptEntry is one answered question in a transcript.
type TranscriptEntry struct {
	Number     int
	Text       string
	Example    string
	LeftLabel  string
	RightLabel string
	Answer     int
	Lean       string // 左寄り, 中間 or 右寄り
}

// AdviceData feeds the Advice template.
type AdviceData struct {
	// Target is the name of the top-matched profile.
	Target string
	// Summary lists the focus areas with current and target scores.
	Summary string
	// Areas is empty when the user is already close to Target.
	Areas []AdviceArea
}

// AdviceArea is one dimension worth improving.
type AdviceArea struct {
	Title       string
	Suggestions []string
}
