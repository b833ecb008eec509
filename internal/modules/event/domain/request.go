package domain

import shareddomain "github.com/golangid/attendo/pkg/shared/domain"

// RequestEvent model, all field are opaque string
type RequestEvent struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}

// Deserialize to db model
func (r *RequestEvent) Deserialize() (res shareddomain.Event) {
	res.Name = r.Name
	res.Date = r.Date
	res.Time = r.Time
	res.Place = r.Place
	return
}

// FilterMyEvents query param of my events
type FilterMyEvents struct {
	Email string `json:"email"`
}
