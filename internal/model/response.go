package model

// Response is returned to the invocation runtime when a whole batch has been
// stored. The runtime does not branch on it; failures surface as returned
// errors instead.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
