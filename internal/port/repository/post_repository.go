package repository

import (
	"context"
	"errors"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
)

var (
	ErrPostNotFound = errors.New("repository: post not found")
)

/**
 * 投稿リポジトリの契約
 * List: 作成順で全件返す
 * Create: ID を払い出して末尾に追加する。ID は再利用しない
 * Get: ID 取得、未存在時は ErrPostNotFound
 * Update: タイトルと本文を上書き、未存在時は ErrPostNotFound
 * Delete: 削除、未存在時は ErrPostNotFound
 */
type PostRepository interface {
	List(ctx context.Context) ([]*post.Post, error)
	Create(ctx context.Context, title, description string) (*post.Post, error)
	Get(ctx context.Context, id post.ID) (*post.Post, error)
	Update(ctx context.Context, id post.ID, title, description string) (*post.Post, error)
	Delete(ctx context.Context, id post.ID) error
}
