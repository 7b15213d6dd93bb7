// Package file adapts multipart uploads to the validators in pkg/validator and
// groups them into a per-field Guard configured from the environment.
//
// Upload wraps a *multipart.FileHeader and exposes only its declared content
// type and size. File bytes are never read; if content sniffing is needed it
// must happen before the metadata reaches the Guard.
//
// # Usage
//
//	policy, err := file.LoadPolicy("AVATAR_") // AVATAR_MAX_SIZE, AVATAR_ALLOWED_MIME_TYPES, ...
//	if err != nil {
//		return err
//	}
//	guard, err := file.NewGuard(policy, file.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	// In HTTP handler
//	fh := r.MultipartForm.File["avatar"][0]
//	if err := guard.CheckHeader("avatar", fh); err != nil {
//		verrs := validator.ExtractValidationErrors(err)
//		// render verrs per field
//	}
package file
