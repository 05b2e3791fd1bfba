package post

import (
	"context"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

type GetPostInput struct {
	ID int
}

// 投稿 1 件取得のユースケース
type GetPostUsecase struct {
	postRepo repository.PostRepository
}

func NewGetPostUsecase(postRepo repository.PostRepository) *GetPostUsecase {
	return &GetPostUsecase{postRepo: postRepo}
}

/**
 * ID で投稿を引く。払い出され得ない ID も未存在として扱う。
 */
func (u *GetPostUsecase) Execute(ctx context.Context, in *GetPostInput) (*PostOutput, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	id := post.ID(in.ID)
	if !id.IsValid() {
		return nil, ErrPostNotFound
	}

	p, err := u.postRepo.Get(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return toOutput(p), nil
}
