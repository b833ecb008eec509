package validator

import (
	"io/fs"
)

// Validator instance
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator instance
func NewValidator(schemaFS fs.FS) (*Validator, error) {
	jsonSchema, err := NewJSONSchemaValidator(schemaFS)
	if err != nil {
		return nil, err
	}
	return &Validator{
		JSONSchemaValidator: jsonSchema,
		StructValidator:     NewStructValidator(),
	}, nil
}
