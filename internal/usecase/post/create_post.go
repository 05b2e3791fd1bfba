package post

import (
	"context"

	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

// 投稿作成の入力値。必須項目の有無はハンドラーで検証済み。
type CreatePostInput struct {
	Title       string
	Description string
}

/**
 * 投稿作成のユースケース
 * postRepo: ID 採番を担う投稿リポジトリ
 */
type CreatePostUsecase struct {
	postRepo repository.PostRepository
}

/**
 * ユースケース毎に初期化
 */
func NewCreatePostUsecase(postRepo repository.PostRepository) *CreatePostUsecase {
	return &CreatePostUsecase{
		postRepo: postRepo,
	}
}

/**
 * 投稿作成の実行
 */
func (u *CreatePostUsecase) Execute(ctx context.Context, in *CreatePostInput) (*PostOutput, error) {
	if in == nil {
		return nil, ErrNilInput
	}

	p, err := u.postRepo.Create(ctx, in.Title, in.Description)
	if err != nil {
		return nil, err
	}

	return toOutput(p), nil
}
