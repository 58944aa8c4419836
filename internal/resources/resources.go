// Package resources implements MCP resource handlers for the quiz data.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (ijin://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/ijin/internal/catalog"
	"github.com/HendryAvila/ijin/internal/questions"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	CatalogURI   = "ijin://catalog"
	QuestionsURI = "ijin://questions"
)

// Handler serves the catalog and question bank.
type Handler struct {
	catalog *catalog.Catalog
	bank    *questions.Bank
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(c *catalog.Catalog, bank *questions.Bank) *Handler {
	return &Handler{catalog: c, bank: bank}
}

// CatalogResource returns the MCP resource definition for the reference
// figures.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		CatalogURI,
		"Historical Figure Catalog",
		mcp.WithResourceDescription("Reference figures with their categories and trait vectors"),
		mcp.WithMIMEType("application/json"),
	)
}

// QuestionsResource returns the MCP resource definition for the question
// bank.
func (h *Handler) QuestionsResource() mcp.Resource {
	return mcp.NewResource(
		QuestionsURI,
		"Question Bank",
		mcp.WithResourceDescription("Diagnosis questions with stages, labels, examples and scoring rules"),
		mcp.WithMIMEType("application/json"),
	)
}

type catalogDocument struct {
	Categories []string          `json:"categories"`
	Profiles   []catalog.Profile `json:"profiles"`
}

// HandleCatalog returns the catalog as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.catalog == nil {
		return errorResource(req.Params.URI, "catalog is not loaded"), nil
	}
	return jsonResource(req.Params.URI, catalogDocument{
		Categories: h.catalog.Categories(),
		Profiles:   h.catalog.Profiles(),
	})
}

// HandleQuestions returns the question bank as JSON.
func (h *Handler) HandleQuestions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.bank == nil {
		return errorResource(req.Params.URI, "question bank is not loaded"), nil
	}
	return jsonResource(req.Params.URI, h.bank.All())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
