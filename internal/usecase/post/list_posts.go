package post

import (
	"context"

	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

// 投稿一覧取得のユースケース
type ListPostsUsecase struct {
	postRepo repository.PostRepository
}

func NewListPostsUsecase(postRepo repository.PostRepository) *ListPostsUsecase {
	return &ListPostsUsecase{postRepo: postRepo}
}

/**
 * 作成順で全投稿を返す。空のときは空スライス。
 */
func (u *ListPostsUsecase) Execute(ctx context.Context) ([]*PostOutput, error) {
	posts, err := u.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*PostOutput, 0, len(posts))
	for _, p := range posts {
		out = append(out, toOutput(p))
	}
	return out, nil
}
