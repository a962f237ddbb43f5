package request

type CreateCommentRequest struct {
	Text string `json:"text"`
}
