package response

// Error codes, one per failure class. validation_error and not_found
// are user-correctable, auth_error redirects to login, store_error is
// opaque and terminal for the request.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeAuth       = "auth_error"
	CodeStore      = "store_error"
)

var (
	ErrInvalidRequestFormat = Response{
		Success: false,
		Error:   CodeValidation,
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = Response{
		Success: false,
		Error:   CodeAuth,
		Details: "Authentication failed",
	}

	ErrSessionRequired = Response{
		Success: false,
		Error:   CodeAuth,
		Details: "Admin session required",
	}

	ErrInternal = Response{
		Success: false,
		Error:   CodeStore,
		Details: "Something went wrong, please retry",
	}
)
