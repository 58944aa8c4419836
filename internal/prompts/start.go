// Package prompts implements MCP prompt handlers for the quiz.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultQuestionCount is the session length the prompt asks for when the
// user does not pick one.
const DefaultQuestionCount = 15

// StartPrompt handles the ijin-start MCP prompt.
// It guides the AI through a full diagnosis session.
type StartPrompt struct {
	total int
}

// NewStartPrompt creates a StartPrompt for sessions of total questions.
func NewStartPrompt(total int) *StartPrompt {
	if total <= 0 {
		total = DefaultQuestionCount
	}
	return &StartPrompt{total: total}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("ijin-start",
		mcp.WithPromptDescription(
			"Start a values diagnosis session. "+
				"Asks a series of 5-point questions and then shows which historical figures "+
				"share your values.",
		),
		mcp.WithArgument("name",
			mcp.ArgumentDescription("How to address the person taking the diagnosis"),
		),
		mcp.WithArgument("questions",
			mcp.ArgumentDescription(fmt.Sprintf("Number of questions to ask. Default: %d", p.total)),
		),
	)
}

// Handle processes the ijin-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := "あなた"
	total := p.total
	if args := req.Params.Arguments; args != nil {
		if n, ok := args["name"]; ok && n != "" {
			name = n
		}
		if q, ok := args["questions"]; ok {
			if n, err := strconv.Atoi(q); err == nil && n > 0 {
				total = n
			}
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Values diagnosis for %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to take the historical figure values diagnosis (%d questions). Address me as '%s'.\n\n"+
						"Please:\n"+
						"1. Call `quiz_next_question` with question_count=0 and show me the question, "+
						"its example, and the scale from 1 (left label) to 5 (right label)\n"+
						"2. After each answer, call `quiz_next_question` again with question_count set to the number of answers, "+
						"answers as position:value pairs (e.g. '1:3,2:5') and history as the JSON array of questions shown so far\n"+
						"3. After %d answers, build the transcript: for each question write '<n>. <text>', "+
						"'  具体例: <example>', '  左: <left> (1点) ←→ 右: <right> (5点)' and '  回答: <answer>点'\n"+
						"4. Call `quiz_final_report` with that transcript\n"+
						"5. Present my scores, my value type, the three matched figures and the advice in Japanese\n\n"+
						"Ask one question at a time and never skip ahead.",
					total, name, total,
				)),
			},
		},
	}, nil
}
