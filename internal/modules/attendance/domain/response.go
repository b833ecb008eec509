package domain

// ResponseJoin model
type ResponseJoin struct {
	UniqueNumber string `json:"uniqueNumber"`
	// Created false when participant with same email already joined
	Created bool `json:"-"`
}
