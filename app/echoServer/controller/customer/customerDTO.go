package customer

// CustomerReq is the create and update payload
// swagger:model CustomerReq
type CustomerReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
