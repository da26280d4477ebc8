package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type openapiDoc string

func (d openapiDoc) ReadDoc() string {
	return string(d)
}

var registerOnce sync.Once

// registerSwagger publishes doc to swag so the swagger UI can serve it. swag
// keeps a process wide registry, so only the first document is kept.
func registerSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, openapiDoc(data))
	})
	return nil
}
