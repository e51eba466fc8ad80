package workflow

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed workflow-request.schema.json
var workflowRequestSchema []byte

// Validator valida solicitudes de workflow contra el JSON Schema embebido.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compila el schema de workflow-request.
func NewValidator() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(workflowRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("compile workflow-request schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate valida el documento. Devuelve nil si es válido; si no, un error con
// la primera violación encontrada.
func (v *Validator) Validate(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		// El documento ni siquiera es JSON parseable.
		return err
	}
	if result.Valid() {
		return nil
	}
	return errors.New(result.Errors()[0].String())
}
