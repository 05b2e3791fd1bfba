package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	postusecase "github.com/atejada/SimpleBlogAPI/internal/usecase/post"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	messagePostInvalidRequest   = "invalid post request"
	messagePostValidationFailed = "Input payload validation failed"

	missingParameterSuffix = " Missing required parameter in the JSON body or the post body or the query string"
)

// 各入力項目の JSON 名と説明。検証エラーのメッセージに使う。
var postRequestFields = []struct {
	field string
	name  string
	help  string
}{
	{field: "Title", name: "title", help: "Post title"},
	{field: "Description", name: "description", help: "Post content"},
}

type ListPostsExecutor interface {
	Execute(ctx context.Context) ([]*postusecase.PostOutput, error)
}

// 投稿作成ユースケースの契約。
type CreatePostExecutor interface {
	Execute(ctx context.Context, in *postusecase.CreatePostInput) (*postusecase.PostOutput, error)
}

type GetPostExecutor interface {
	Execute(ctx context.Context, in *postusecase.GetPostInput) (*postusecase.PostOutput, error)
}

type UpdatePostExecutor interface {
	Execute(ctx context.Context, in *postusecase.UpdatePostInput) (*postusecase.PostOutput, error)
}

type DeletePostExecutor interface {
	Execute(ctx context.Context, in *postusecase.DeletePostInput) error
}

// PostUsecases は PostHandler が委譲する先をまとめたもの。
type PostUsecases struct {
	List   ListPostsExecutor
	Create CreatePostExecutor
	Get    GetPostExecutor
	Update UpdatePostExecutor
	Delete DeletePostExecutor
}

type PostHandler struct {
	usecases PostUsecases
	logger   *zap.Logger
}

// PostHandler を生成する。
func NewPostHandler(usecases PostUsecases, logger *zap.Logger) *PostHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostHandler{usecases: usecases, logger: logger}
}

// POST /posts/ と PUT /posts/:id の入力。未指定を検出するためポインタで受ける。
type PostRequest struct {
	Title       *TextValue `json:"title" form:"title" binding:"required"`
	Description *TextValue `json:"description" form:"description" binding:"required"`
}

// TextValue は JSON の文字列に加えて数値と真偽値も文字列として受け取る。
// 数値はリテラルの表記のまま、真偽値は "True" / "False" になる。
type TextValue string

func (v *TextValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = TextValue(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*v = "True"
		} else {
			*v = "False"
		}
		return nil
	}
	return fmt.Errorf("text value: unsupported json %s", data)
}

// 投稿のレスポンス表現。
type PostResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func newPostResponse(out *postusecase.PostOutput) PostResponse {
	return PostResponse{
		ID:          out.ID,
		Title:       out.Title,
		Description: out.Description,
	}
}

/**
 * GET /posts/ 作成順の全件を返す。
 */
func (h *PostHandler) ListPosts(c *gin.Context) {
	out, err := h.usecases.List.Execute(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]PostResponse, 0, len(out))
	for _, p := range out {
		resp = append(resp, newPostResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

/**
 * POST /posts/ のリクエストを検証し、ユースケースへ委譲して 201 で返す。
 */
func (h *PostHandler) CreatePost(c *gin.Context) {
	req, ok := h.bindPostRequest(c)
	if !ok {
		return
	}

	out, err := h.usecases.Create.Execute(c.Request.Context(), &postusecase.CreatePostInput{
		Title:       string(*req.Title),
		Description: string(*req.Description),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(out))
}

/**
 * GET /posts/:id
 */
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	out, err := h.usecases.Get.Execute(c.Request.Context(), &postusecase.GetPostInput{ID: id})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(out))
}

/**
 * PUT /posts/:id 対象の存在を先に確かめ、未存在なら本文に関わらず 404。
 */
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	if _, err := h.usecases.Get.Execute(c.Request.Context(), &postusecase.GetPostInput{ID: id}); err != nil {
		h.handleError(c, err)
		return
	}
	req, ok := h.bindPostRequest(c)
	if !ok {
		return
	}

	out, err := h.usecases.Update.Execute(c.Request.Context(), &postusecase.UpdatePostInput{
		ID:          id,
		Title:       string(*req.Title),
		Description: string(*req.Description),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(out))
}

/**
 * DELETE /posts/:id 成功時は本文なしの 204。
 */
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.usecases.Delete.Execute(c.Request.Context(), &postusecase.DeletePostInput{ID: id}); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

/**
 * Content-Type に応じて JSON もしくはフォームを読み、必須項目の有無を検証する。
 * 失敗時はレスポンスを書き込んで false を返す。
 */
func (h *PostHandler) bindPostRequest(c *gin.Context) (*PostRequest, bool) {
	var req PostRequest
	err := c.ShouldBind(&req)
	if err == nil {
		return &req, true
	}

	var verrs validator.ValidationErrors
	switch {
	// 必須項目の欠落
	case errors.As(err, &verrs):
		missing := make(map[string]bool, len(verrs))
		for _, fe := range verrs {
			missing[fe.StructField()] = true
		}
		c.JSON(http.StatusBadRequest, missingFieldsResponse(missing))
	// 空の JSON 本文は全項目の欠落として扱う
	case errors.Is(err, io.EOF):
		c.JSON(http.StatusBadRequest, missingFieldsResponse(map[string]bool{"Title": true, "Description": true}))
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Message: messagePostInvalidRequest})
	}
	return nil, false
}

func missingFieldsResponse(missing map[string]bool) errorResponse {
	errs := make(map[string]string, len(missing))
	for _, f := range postRequestFields {
		if missing[f.field] {
			errs[f.name] = f.help + missingParameterSuffix
		}
	}
	return errorResponse{Message: messagePostValidationFailed, Errors: errs}
}

// 数字のみで構成されない ID は該当投稿なしとして 404 を返す。符号も受け付けない。
func parsePostID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || !isDigits(raw) {
		c.JSON(http.StatusNotFound, errorResponse{Message: messagePostNotFound})
		return 0, false
	}
	return id, true
}

/**
 * ユースケースからのエラーを HTTP ステータスとメッセージへ写し替える。
 */
func (h *PostHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postusecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Message: messagePostNotFound})
	case errors.Is(err, postusecase.ErrNilInput):
		c.JSON(http.StatusBadRequest, errorResponse{Message: messagePostInvalidRequest})
	default:
		h.logger.Error("post request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: messageInternalError})
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
