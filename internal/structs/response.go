package structs

// Response is the envelope every portal JSON endpoint replies with.
type Response struct {
	Status      int         `json:"status"`
	Description string      `json:"description"`
	Payload     interface{} `json:"payload,omitempty"`
}
