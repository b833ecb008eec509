package constant

// Service name type
type Service string

// Module name type
type Module string

const (
	// Attendo service name
	Attendo Service = "attendo"
)

const (
	// Account module
	Account Module = "account"
	// Event module
	Event Module = "event"
	// Attendance module
	Attendance Module = "attendance"
	// Resource module
	Resource Module = "resource"
	// Feedback module
	Feedback Module = "feedback"
	// Page module
	Page Module = "page"
)
