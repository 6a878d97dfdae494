// Package validator provides small composable validation rules.
//
// A [Rule] pairs a check with the [ValidationError] it produces. [Apply]
// evaluates every rule, never stopping at the first failure, and returns the
// failures as [ValidationErrors]:
//
//	err := validator.Apply(
//	    validator.RequiredString("fullName", form.FullName),
//	    validator.Email("email", form.Email),
//	    validator.True("agreedToTerms", form.AgreedToTerms).WithMessage("Agreement to terms is required"),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    return ve.Messages()
//	}
package validator
