package models

import "github.com/go-playground/validator"

// go-playground/validator suggests using a single instance, so request DTO
// validation across the services funnels through this one.
var validate = validator.New()

// ValidateRequest runs struct tag validation over a request DTO.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
