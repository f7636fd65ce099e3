package response

// Response is the tagged result every endpoint returns. Failures are
// represented here, never as panics across the boundary.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Err(code, details string) Response {
	return Response{
		Success: false,
		Error:   code,
		Details: details,
	}
}
