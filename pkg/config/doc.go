// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once, on first use,
//     without overriding variables already present in the process.
//   - LoadEnv loads explicit files, later files overriding earlier ones.
//   - Load and LoadWithPrefix parse the environment into any struct using `env`
//     field tags. The prefix lets one struct type describe several upload
//     fields, for example AVATAR_MAX_SIZE and DOCUMENT_MAX_SIZE.
//   - MustLoad and MustLoadEnv panic on failure for configuration that is
//     required at startup.
//
// Values are parsed on every call. Callers are expected to load configuration
// once during setup and keep the result.
//
// # Errors
//
// Parsing failures wrap ErrParsingConfig, file failures wrap ErrLoadingEnvFile,
// and a nil target returns ErrNilPointer. Use errors.Is to match them.
package config
