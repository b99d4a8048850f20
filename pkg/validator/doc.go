// Package validator provides small composable validation rules applied with
// a single Apply call that accumulates ValidationErrors.
//
//	err := validator.Apply(
//		validator.RequiredString("name", req.Name),
//		validator.ValidEmail("email", req.Email),
//	)
//	if err != nil {
//		errs := validator.ExtractValidationErrors(err)
//		// render errs.Fields()
//	}
package validator
