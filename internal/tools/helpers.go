// Package tools implements the MCP tool handlers for the quiz.
//
// Each tool is a struct holding its dependencies, with Definition()
// returning the mcp.Tool schema and Handle() serving the call. Tools are
// thin: they decode arguments, call quiz.Service and encode the result.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request. JSON numbers
// arrive as float64 and must be whole; numeric strings are accepted too.
func intArg(req mcp.CallToolRequest, key string) (int, bool) {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

// parseAnswers reads "position:value" pairs separated by commas,
// e.g. "1:3,2:5".
func parseAnswers(s string) (map[string]int, error) {
	answers := map[string]int{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		pos, val, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("answer %q is not in position:value form", pair)
		}
		pos = strings.TrimSpace(pos)
		if _, err := strconv.Atoi(pos); err != nil {
			return nil, fmt.Errorf("answer position %q is not a number", pos)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("answer value %q is not a number", val)
		}
		answers[pos] = n
	}
	return answers, nil
}

// parseHistory decodes the JSON array of presented questions.
func parseHistory(s string) ([]quiz.QuestionRef, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var refs []quiz.QuestionRef
	if err := json.Unmarshal([]byte(s), &refs); err != nil {
		return nil, fmt.Errorf("history must be a JSON array of questions: %w", err)
	}
	return refs, nil
}

// jsonResult encodes v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// serviceError turns a bad request into a user-visible tool error and
// passes every other failure through as a Go error.
func serviceError(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, quiz.ErrInvalidRequest) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}
