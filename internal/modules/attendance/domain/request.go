package domain

// RequestJoin model, EventID is optional hex id of joined event
type RequestJoin struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID string `json:"eventId,omitempty"`
}

// RequestVerify model
type RequestVerify struct {
	UniqueNumber string `json:"uniqueNumber"`
}
