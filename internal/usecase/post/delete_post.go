package post

import (
	"context"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

type DeletePostInput struct {
	ID int
}

// 投稿削除のユースケース
type DeletePostUsecase struct {
	postRepo repository.PostRepository
}

func NewDeletePostUsecase(postRepo repository.PostRepository) *DeletePostUsecase {
	return &DeletePostUsecase{postRepo: postRepo}
}

/**
 * 削除は終端操作。同じ ID を 2 度消すと 2 度目は ErrPostNotFound。
 */
func (u *DeletePostUsecase) Execute(ctx context.Context, in *DeletePostInput) error {
	if in == nil {
		return ErrNilInput
	}
	id := post.ID(in.ID)
	if !id.IsValid() {
		return ErrPostNotFound
	}

	if err := u.postRepo.Delete(ctx, id); err != nil {
		return translateRepositoryError(err)
	}
	return nil
}
