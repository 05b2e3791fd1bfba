package memory

import (
	"context"
	"sync"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

const firstPostID post.ID = 1

// 作成順を保つメモリ常駐版の投稿リポジトリ。プロセス終了で消える。
type InMemoryPostRepository struct {
	mu     sync.RWMutex
	posts  []*post.Post
	nextID post.ID
}

/**
 * 空の投稿列と ID 1 から始まる採番器を持つリポジトリを返す。
 */
func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{
		posts:  make([]*post.Post, 0),
		nextID: firstPostID,
	}
}

func (r *InMemoryPostRepository) List(ctx context.Context) ([]*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		result = append(result, p.Clone())
	}
	return result, nil
}

/**
 * 現在の nextID で投稿を組み立てて末尾に追加し、採番器を 1 進める。
 */
func (r *InMemoryPostRepository) Create(ctx context.Context, title, description string) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := post.New(r.nextID, title, description)
	if err != nil {
		return nil, err
	}
	r.posts = append(r.posts, p)
	r.nextID++
	return p.Clone(), nil
}

/**
 * ID で検索し、存在しなければ NotFound を返す。
 */
func (r *InMemoryPostRepository) Get(ctx context.Context, id post.ID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.find(id)
	if p == nil {
		return nil, repository.ErrPostNotFound
	}
	return p.Clone(), nil
}

/**
 * 既存エントリのタイトルと本文のみ上書きし、未登録なら NotFound を返す。
 */
func (r *InMemoryPostRepository) Update(ctx context.Context, id post.ID, title, description string) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, repository.ErrPostNotFound
	}
	p.Edit(title, description)
	return p.Clone(), nil
}

/**
 * ID が一致するエントリを取り除いた列に組み直す。順序は保たれる。
 */
func (r *InMemoryPostRepository) Delete(ctx context.Context, id post.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(id) == nil {
		return repository.ErrPostNotFound
	}

	kept := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	r.posts = kept
	return nil
}

// 先頭から走査して最初に一致したものを返す。
func (r *InMemoryPostRepository) find(id post.ID) *post.Post {
	for _, p := range r.posts {
		if p.ID() == id {
			return p
		}
	}
	return nil
}
