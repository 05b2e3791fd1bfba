package post

import (
	"context"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

type UpdatePostInput struct {
	ID          int
	Title       string
	Description string
}

// 投稿更新のユースケース。ID は変更しない。
type UpdatePostUsecase struct {
	postRepo repository.PostRepository
}

func NewUpdatePostUsecase(postRepo repository.PostRepository) *UpdatePostUsecase {
	return &UpdatePostUsecase{postRepo: postRepo}
}

func (u *UpdatePostUsecase) Execute(ctx context.Context, in *UpdatePostInput) (*PostOutput, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	id := post.ID(in.ID)
	if !id.IsValid() {
		return nil, ErrPostNotFound
	}

	p, err := u.postRepo.Update(ctx, id, in.Title, in.Description)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return toOutput(p), nil
}
