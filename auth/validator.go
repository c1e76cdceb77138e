package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type RegisterRequest struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Password string `validate:"required,min=8,max=72"`
	Role     string `validate:"omitempty,oneof=player dm"`
}

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func ValidateRegister(req RegisterRequest) error {
	return validate.Struct(req)
}

func ValidateLogin(req LoginRequest) error {
	return validate.Struct(req)
}
