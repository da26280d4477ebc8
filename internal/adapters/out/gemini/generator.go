// Package gemini implements ports.TextGenerator on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"speedial/internal/core/ports"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

var ErrAPIKeyIsRequired = errors.New("gemini API key is required")

// Generator sends one GenerateContent call per request. Structured requests
// ask for application/json with the request schema attached.
type Generator struct {
	client *genai.Client
	model  string
}

func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyIsRequired
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{client: client, model: model}, nil
}

func (g *Generator) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(req.Prompt),
		newConfig(req),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}

func newConfig(req ports.GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toSchema(req.Schema)
	}
	return cfg
}

func toSchema(s *ports.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	return out
}

func toType(t ports.SchemaType) genai.Type {
	switch t {
	case ports.SchemaObject:
		return genai.TypeObject
	case ports.SchemaArray:
		return genai.TypeArray
	case ports.SchemaString:
		return genai.TypeString
	default:
		return genai.TypeUnspecified
	}
}

// Disabled stands in when no API key is configured. Every call fails, so
// callers fall back to their canned answers.
type Disabled struct{}

func (Disabled) Generate(context.Context, ports.GenerateRequest) (string, error) {
	return "", ports.ErrTextGeneratorDisabled
}
