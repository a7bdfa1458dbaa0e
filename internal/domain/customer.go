package domain

// Customer mirrors the backend customer resource. The checkout workflow
// looks customers up by exact phone match and creates them lazily.
type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Company       string `json:"company,omitempty"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
