package domain

import (
	"time"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// RequestFeedback model
type RequestFeedback struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Deserialize to db model, submission time is assigned by server
func (r *RequestFeedback) Deserialize(submittedAt time.Time) shareddomain.Feedback {
	return shareddomain.Feedback{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
		Date:    submittedAt,
	}
}
