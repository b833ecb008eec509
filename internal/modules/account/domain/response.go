package domain

import shareddomain "github.com/golangid/attendo/pkg/shared/domain"

// ResponseLogin model
type ResponseLogin struct {
	Status shareddomain.AccountStatus `json:"status"`
}

// ResponseProfile projection of account
type ResponseProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Serialize from db model
func (r *ResponseProfile) Serialize(source *shareddomain.Account) {
	r.Name = source.Username
	r.Email = source.Email
}
