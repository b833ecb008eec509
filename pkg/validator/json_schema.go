package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/gojsonschema"
)

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator load all json file in schema filesystem,
// schema id taken from "$id" or file path without extension
func NewJSONSchemaValidator(schemaFS fs.FS) (*JSONSchemaValidator, error) {
	v := &JSONSchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	err := fs.WalkDir(schemaFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}

		s, err := fs.ReadFile(schemaFS, p)
		if err != nil {
			return fmt.Errorf("%s: %v", p, err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %v", p, err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.TrimSuffix(p, ".json")
		}
		v.schemas[id], err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(s))
		if err != nil {
			return fmt.Errorf("%s: %v", p, err)
		}
		return nil
	})
	return v, err
}

func (v *JSONSchemaValidator) getSchema(schemaID string) (schema *gojsonschema.Schema, err error) {
	s, ok := v.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema '%s' not found", schemaID)
	}

	return s, nil
}

// ValidateDocument based on schema id
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, documentSource []byte) error {

	multiError := helper.NewMultiError()

	schema, err := v.getSchema(schemaID)
	if err != nil {
		return err
	}

	document := gojsonschema.NewBytesLoader(documentSource)

	result, err := schema.Validate(document)
	if err != nil {
		multiError.Append("body", errors.New("request body is not a valid JSON document"))
		return multiError
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if notShowErrorListType[desc.Type()] {
				continue
			}
			var field = desc.Field()
			if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
				field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
				field = strings.TrimPrefix(field, "(root).")
			}
			multiError.Append(field, errors.New(desc.Description()))
		}
	}

	if multiError.HasError() {
		return multiError
	}

	return nil
}
