// Package quiz exposes the two operations every transport calls: picking
// the next question and building the final report.
//
// The service is stateless across calls. Callers carry the session (answers
// and question history) and send it back with every request.
package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/HendryAvila/ijin/internal/catalog"
	"github.com/HendryAvila/ijin/internal/matching"
	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/HendryAvila/ijin/internal/report"
	"github.com/HendryAvila/ijin/internal/scoring"
	"github.com/HendryAvila/ijin/internal/selector"
	"github.com/HendryAvila/ijin/internal/templates"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrInvalidRequest marks a request whose shape cannot be processed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInternal marks a fault inside the computation itself.
	ErrInternal = errors.New("internal error")
)

// DefaultTotalQuestions is the length of a full session.
const DefaultTotalQuestions = 15

// --- Request and response types ---

// QuestionRef identifies a question the caller already presented.
type QuestionRef struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
}

// NextQuestionRequest carries the session so far. Answers are keyed by
// 1-based position in the session ("1", "2", ...).
type NextQuestionRequest struct {
	Answers         map[string]int `json:"answers"`
	QuestionCount   *int           `json:"questionCount"`
	QuestionHistory []QuestionRef  `json:"questionHistory"`
}

// Question is a question as presented to the user.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
	Example    string `json:"example"`
}

// NextQuestionResponse is the selected question and why it was chosen.
type NextQuestionResponse struct {
	Question Question `json:"question"`
	Reason   string   `json:"reason"`
}

// FinalReportRequest carries a formatted session transcript.
type FinalReportRequest struct {
	Transcript string `json:"transcript"`
}

// --- Service ---

// Service implements the quiz operations.
type Service struct {
	bank     *questions.Bank
	catalog  *catalog.Catalog
	selector *selector.Selector
	builder  *report.Builder
	total    int
	cache    *lru.Cache[string, *report.Report]
	metrics  *Metrics
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	cacheSize int
	total     int
	metrics   *Metrics
	logger    *slog.Logger
	bank      *questions.Bank
	catalog   *catalog.Catalog
}

// WithCacheSize bounds the report cache. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(o *serviceOptions) { o.cacheSize = n }
}

// WithTotalQuestions sets the session length used by simulations.
func WithTotalQuestions(n int) Option {
	return func(o *serviceOptions) { o.total = n }
}

// WithMetrics records service activity.
func WithMetrics(m *Metrics) Option {
	return func(o *serviceOptions) { o.metrics = m }
}

// WithLogger sets the logger used for internal faults.
func WithLogger(l *slog.Logger) Option {
	return func(o *serviceOptions) { o.logger = l }
}

// WithData replaces the embedded question bank and catalog.
func WithData(bank *questions.Bank, c *catalog.Catalog) Option {
	return func(o *serviceOptions) {
		o.bank = bank
		o.catalog = c
	}
}

// New creates a Service over the embedded data.
func New(opts ...Option) (*Service, error) {
	o := serviceOptions{total: DefaultTotalQuestions}
	for _, opt := range opts {
		opt(&o)
	}
	if o.total <= 0 {
		return nil, fmt.Errorf("total questions must be positive, got %d", o.total)
	}
	if o.bank == nil {
		o.bank = questions.Default()
	}
	if o.catalog == nil {
		o.catalog = catalog.Default()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	s := &Service{
		bank:     o.bank,
		catalog:  o.catalog,
		selector: selector.New(o.bank),
		builder:  report.NewBuilder(scoring.New(o.bank), matching.New(o.catalog), renderer),
		total:    o.total,
		metrics:  o.metrics,
		logger:   o.logger,
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, *report.Report](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating report cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// TotalQuestions is the configured session length.
func (s *Service) TotalQuestions() int {
	return s.total
}

// Bank returns the question bank the service selects from.
func (s *Service) Bank() *questions.Bank {
	return s.bank
}

// Catalog returns the reference catalog reports are matched against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// NextQuestion selects the question to present after req.QuestionCount
// answers.
func (s *Service) NextQuestion(ctx context.Context, req NextQuestionRequest) (resp *NextQuestionResponse, err error) {
	defer s.recoverInternal("next question", &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.QuestionCount == nil {
		return nil, fmt.Errorf("%w: questionCount is required", ErrInvalidRequest)
	}
	count := *req.QuestionCount
	if count < 0 {
		return nil, fmt.Errorf("%w: questionCount must not be negative, got %d", ErrInvalidRequest, count)
	}

	history := MergeHistory(req.QuestionHistory, req.Answers)
	sel := s.selector.Next(history, count)
	s.metrics.ObserveQuestion(string(sel.Stage))

	q := sel.Question
	return &NextQuestionResponse{
		Question: Question{
			ID:         q.ID,
			Text:       q.Text,
			LeftLabel:  q.LeftLabel,
			RightLabel: q.RightLabel,
			Example:    sel.Example().Text(),
		},
		Reason: sel.Reason,
	}, nil
}

// FinalReport scores a transcript and builds its report. Reports are pure
// functions of the transcript, so cached reports are shared between callers
// and must not be modified.
func (s *Service) FinalReport(ctx context.Context, req FinalReportRequest) (env *report.Envelope, err error) {
	defer s.recoverInternal("final report", &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := transcriptKey(req.Transcript)
	if s.cache != nil {
		if rep, ok := s.cache.Get(key); ok {
			s.metrics.ObserveReport(true, time.Since(start), nil)
			return &report.Envelope{IsFinished: true, Result: rep}, nil
		}
	}

	rep, err := s.builder.FromTranscript(req.Transcript)
	s.metrics.ObserveReport(false, time.Since(start), err)
	if err != nil {
		s.logger.Error("building report failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.cache != nil {
		s.cache.Add(key, rep)
	}
	return &report.Envelope{IsFinished: true, Result: rep}, nil
}

// FormatTranscript renders history in the transcript format FinalReport
// reads.
func (s *Service) FormatTranscript(history []questions.Answered) (string, error) {
	return s.builder.FormatTranscript(history)
}

func (s *Service) recoverInternal(op string, err *error) {
	if r := recover(); r != nil {
		s.logger.Error("panic in quiz operation", "operation", op, "panic", r)
		*err = fmt.Errorf("%w: %s: %v", ErrInternal, op, r)
	}
}

// maxPosition bounds the answer positions MergeHistory considers.
const maxPosition = 1000

// MergeHistory joins the presented questions with the answers map by
// position. Answers past the end of refs still count toward the session
// statistics. Off-scale answers are dropped.
func MergeHistory(refs []QuestionRef, answers map[string]int) []questions.Answered {
	n := len(refs)
	for key := range answers {
		if pos, err := strconv.Atoi(key); err == nil && pos > n && pos <= maxPosition {
			n = pos
		}
	}

	out := make([]questions.Answered, 0, n)
	for i := 0; i < n; i++ {
		var h questions.Answered
		if i < len(refs) {
			r := refs[i]
			h = questions.Answered{ID: r.ID, Text: r.Text, LeftLabel: r.LeftLabel, RightLabel: r.RightLabel}
		}
		if a, ok := answers[strconv.Itoa(i+1)]; ok && questions.ValidAnswer(a) {
			h.Answer = a
		}
		if h.ID == 0 && h.Text == "" && h.Answer == 0 {
			continue
		}
		out = append(out, h)
	}
	return out
}

func transcriptKey(transcript string) string {
	sum := sha256.Sum256([]byte(transcript))
	return hex.EncodeToString(sum[:])
}
