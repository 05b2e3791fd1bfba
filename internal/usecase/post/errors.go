package post

import (
	"errors"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

var (
	// ErrNilInput はユースケースに nil 入力が渡された際に返される。
	ErrNilInput = errors.New("post usecase: input is nil")
	// ErrPostNotFound は指定 ID の投稿が存在しない場合に返される。
	ErrPostNotFound = errors.New("post usecase: post not found")
)

// 投稿を呼び出し側へ返す値
type PostOutput struct {
	ID          int
	Title       string
	Description string
}

func toOutput(p *post.Post) *PostOutput {
	return &PostOutput{
		ID:          int(p.ID()),
		Title:       p.Title(),
		Description: p.Description(),
	}
}

// リポジトリの NotFound をユースケースのエラーへ写し替える。
func translateRepositoryError(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return err
}
