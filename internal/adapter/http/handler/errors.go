package handler

const (
	messageInternalError = "internal server error"
	messagePostNotFound  = "Post not found"
)

// エラー時のレスポンス。errors は入力検証の失敗時のみ付与する。
type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
