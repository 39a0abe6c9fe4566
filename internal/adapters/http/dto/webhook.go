package dto

// RevalidateRequest is the publish webhook body sent by the CMS.
type RevalidateRequest struct {
	Secret string `json:"secret"`
	Type   string `json:"type"`
	Slug   string `json:"slug"`
}

// RevalidateResponse acknowledges a publish webhook.
type RevalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Type        string `json:"type"`
	Slug        string `json:"slug"`
	Message     string `json:"message"`
}

// MessageResponse is the body of rejected webhook calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// RevalidateErrorResponse reports a webhook body that could not be read.
type RevalidateErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Messages returned by the revalidation endpoint.
const (
	MsgInvalidToken     = "Invalid token"
	MsgRevalidated      = "Revalidation acknowledged"
	MsgRevalidateFailed = "Error revalidating"
)

// NewRevalidateResponse builds the acknowledgment for an accepted webhook.
func NewRevalidateResponse(req *RevalidateRequest) RevalidateResponse {
	return RevalidateResponse{
		Revalidated: true,
		Type:        req.Type,
		Slug:        req.Slug,
		Message:     MsgRevalidated,
	}
}
