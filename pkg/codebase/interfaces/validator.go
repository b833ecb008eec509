package interfaces

// Validator abstract interface
type Validator interface {
	// ValidateDocument validate raw json document with json schema registered as schemaID
	ValidateDocument(schemaID string, document []byte) error
	ValidateStruct(data interface{}) error
}
