package domain

import shareddomain "github.com/golangid/attendo/pkg/shared/domain"

// RequestResource model, quantity is stored as given
type RequestResource struct {
	MaterialName string `json:"materialName"`
	Quantity     int    `json:"quantity"`
}

// Deserialize to db model
func (r *RequestResource) Deserialize() (res shareddomain.Resource) {
	res.MaterialName = r.MaterialName
	res.Quantity = r.Quantity
	return
}
