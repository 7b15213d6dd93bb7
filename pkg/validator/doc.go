// Package validator provides upload field validators for form and model
// validation: an allow-list check on the declared MIME type and a maximum
// byte size check with human-readable unit display.
//
// Both validators are configured once and then called as pure predicates.
// They read nothing but the value exposed through HasContentType or HasSize,
// never file bytes, and keep no state between calls, so a single instance can
// be shared across goroutines.
//
// # Errors
//
// Construction problems (missing max size, unknown display unit) are returned
// from the constructor and wrap ErrImproperlyConfigured. They indicate a
// programming mistake and should abort setup.
//
// Validation failures are ValidationError values carrying a stable Code, a
// Message template with %{name} placeholders and the Params to substitute:
//
//	mimes := validator.NewMIMEValidator([]string{"image/png", "image/jpeg"})
//	sizes, err := validator.NewFileSizeValidator(5<<20, validator.WithDisplayUnit("MB"))
//	if err != nil {
//	    return err
//	}
//
//	err = validator.Apply(
//	    mimes.Rule("avatar", upload),
//	    sizes.Rule("avatar", upload),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Code, e.Render())
//	    }
//	}
//
// Every failure matches ErrValidationFailed with errors.Is.
//
// # Display units
//
// FileSizeValidator compares raw bytes. The display unit (B, kB, MB, GB) only
// scales the "size" and "max_size" params, rounding up to one decimal place.
// Rounding up overstates sizes slightly, so a rejected size can display the
// same as the limit.
package validator
