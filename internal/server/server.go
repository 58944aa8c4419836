// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it takes the quiz service and injects it
// into the tools, prompts and resources. No business logic lives here,
// only wiring.
package server

import (
	"fmt"

	"github.com/HendryAvila/ijin/internal/prompts"
	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/HendryAvila/ijin/internal/resources"
	"github.com/HendryAvila/ijin/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
func New(svc *quiz.Service) (*server.MCPServer, error) {
	if svc == nil {
		return nil, fmt.Errorf("quiz service is required")
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"ijin",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions(svc.TotalQuestions())),
	)

	// --- Register quiz tools ---

	nextTool := tools.NewNextQuestionTool(svc)
	s.AddTool(nextTool.Definition(), nextTool.Handle)

	reportTool := tools.NewFinalReportTool(svc)
	s.AddTool(reportTool.Definition(), reportTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt(svc.TotalQuestions())
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(svc.Catalog(), svc.Bank())
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)
	s.AddResource(resourceHandler.QuestionsResource(), resourceHandler.HandleQuestions)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to run a diagnosis session.
func serverInstructions(total int) string {
	return fmt.Sprintf(`You have access to ijin, a values diagnosis server that matches people to historical figures.

## WHEN TO ACTIVATE ijin

Suggest a diagnosis when the user asks which historical figure they resemble,
wants to explore their values, or asks for the 偉人診断.

## How a Session Works

The server keeps no session state. You hold the session and send it back on every call.

1. Call quiz_next_question with question_count=0.
2. Show the question text, its example, and the 1-5 scale:
   1 = left label, 3 = neutral, 5 = right label.
3. Record the answer under its 1-based position ("1", "2", ...) and append the
   question (id, text, leftLabel, rightLabel) to the history.
4. Call quiz_next_question with question_count = number of answers so far,
   answers as position:value pairs, and history as a JSON array.
5. Repeat until %d questions are answered.
6. Build the transcript and call quiz_final_report.

## Transcript Format

For every question, in order:

    <n>. <question text>
      具体例: <example>
      左: <left label> (1点) ←→ 右: <right label> (5点)
      回答: <answer>点

## Presenting the Report

- Scores: 実行力, 人間性, 表現力, 魅力, 外見力 (30-100).
- Value type, archetype and core value.
- The three benchmark figures with similarity and reasons.
- Positioning text and advice, quoted as returned.

## Resources

- ijin://catalog lists every reference figure and its trait vector.
- ijin://questions lists the question bank.

## Important Rules

- Ask one question at a time.
- Never invent questions; always use quiz_next_question.
- Never change the numbers in the report.
`, total)
}
