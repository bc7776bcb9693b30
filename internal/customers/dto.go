package customers

// CreateCustomerRequest is the POST /api/customers payload.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=M F"`
}

// UpdateCustomerRequest is the PUT /api/customers/{id} payload. The client
// always sends the full record.
type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=M F"`
}
