// Package validator checks structs against `validate` tags.
//
//	type contactRequest struct {
//		Name  string `json:"name" validate:"required;max:200"`
//		Email string `json:"email" validate:"required;email"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		if errs := validator.ExtractValidationErrors(err); errs != nil {
//			return response.Error(response.ErrUnprocessableEntity.WithDetails(errs.Fields()))
//		}
//	}
//
// Built-in rules are required, max (string length in characters) and email.
// RegisterValidator adds more.
package validator
