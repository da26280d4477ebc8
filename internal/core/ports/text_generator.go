package ports

import (
	"context"
	"errors"
)

// ErrTextGeneratorDisabled is returned by generators that have no credentials.
var ErrTextGeneratorDisabled = errors.New("text generator is disabled")

// SchemaType names the JSON types a response schema can declare.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// Schema describes the JSON document a structured generation must return.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
	Enum        []string
}

// GenerateRequest is one prompt for the generative text service. A nil Schema
// asks for free text.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	Schema            *Schema
}

// TextGenerator is the generative text service.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
