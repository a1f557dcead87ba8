package support

// UserDetails identifies the person behind a support request.
type UserDetails struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Request is the JSON body posted to the /support endpoint.
type Request struct {
	UserID      string      `json:"user_id"`
	UserDetails UserDetails `json:"user_details"`
	UserMessage string      `json:"user_message"`
}

// Response is the JSON body returned by the /support endpoint. Exactly one
// of Response or Error is set on a well-formed reply.
type Response struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
	Category string `json:"category,omitempty"`
}
