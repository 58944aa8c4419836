package tools

import (
	"context"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/mark3labs/mcp-go/mcp"
)

// NextQuestionTool handles the quiz_next_question MCP tool.
type NextQuestionTool struct {
	svc *quiz.Service
}

// NewNextQuestionTool creates a NextQuestionTool with its dependencies.
func NewNextQuestionTool(svc *quiz.Service) *NextQuestionTool {
	return &NextQuestionTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *NextQuestionTool) Definition() mcp.Tool {
	return mcp.NewTool("quiz_next_question",
		mcp.WithDescription(
			"Pick the next question of a values diagnosis session. "+
				"Send the whole session so far on every call: the tool keeps no state. "+
				"Returns the question with its two labels, an example, and the reason it was chosen.",
		),
		mcp.WithNumber("question_count",
			mcp.Required(),
			mcp.Description("Number of questions already answered (0 for the first question)."),
		),
		mcp.WithString("answers",
			mcp.Description("Answers so far as position:value pairs on the 1-5 scale, e.g. '1:3,2:5'."),
		),
		mcp.WithString("history",
			mcp.Description(
				"JSON array of the questions already presented, in order: "+
					"[{\"id\":1,\"text\":\"...\",\"leftLabel\":\"...\",\"rightLabel\":\"...\"}].",
			),
		),
	)
}

// Handle processes the quiz_next_question tool call.
func (t *NextQuestionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, ok := intArg(req, "question_count")
	if !ok {
		return mcp.NewToolResultError("question_count is required and must be a whole number"), nil
	}

	answers, err := parseAnswers(req.GetString("answers", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	history, err := parseHistory(req.GetString("history", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.svc.NextQuestion(ctx, quiz.NextQuestionRequest{
		Answers:         answers,
		QuestionCount:   &count,
		QuestionHistory: history,
	})
	if err != nil {
		return serviceError(err)
	}
	return jsonResult(resp)
}
