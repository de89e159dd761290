package dto

// RegisterRequest is the event registration form payload. Field names mirror
// the public form.
type RegisterRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellidos string `json:"apellidos" validate:"required,min=2"`
	Edad      int    `json:"edad" validate:"gte=16,lte=100"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required,min=9"`
}
