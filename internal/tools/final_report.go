package tools

import (
	"context"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/mark3labs/mcp-go/mcp"
)

// FinalReportTool handles the quiz_final_report MCP tool.
type FinalReportTool struct {
	svc *quiz.Service
}

// NewFinalReportTool creates a FinalReportTool with its dependencies.
func NewFinalReportTool(svc *quiz.Service) *FinalReportTool {
	return &FinalReportTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *FinalReportTool) Definition() mcp.Tool {
	return mcp.NewTool("quiz_final_report",
		mcp.WithDescription(
			"Build the final diagnosis report from a session transcript. "+
				"Returns trait scores, the three closest historical figures, value type labels, "+
				"per-question analysis, positioning text and advice as JSON.",
		),
		mcp.WithString("transcript",
			mcp.Required(),
			mcp.Description(
				"The session transcript. Each question is a numbered line ('1. text') followed by "+
					"'左: L (1点) ←→ 右: R (5点)' and '回答: n点' lines.",
			),
		),
	)
}

// Handle processes the quiz_final_report tool call.
func (t *FinalReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transcript := req.GetString("transcript", "")
	if transcript == "" {
		return mcp.NewToolResultError("transcript is required"), nil
	}

	env, err := t.svc.FinalReport(ctx, quiz.FinalReportRequest{Transcript: transcript})
	if err != nil {
		return serviceError(err)
	}
	return jsonResult(env)
}
