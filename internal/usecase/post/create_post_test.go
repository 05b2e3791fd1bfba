package post

import (
	"context"
	"errors"
	"testing"

	"github.com/atejada/SimpleBlogAPI/internal/domain/post"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
)

func TestCreatePostUsecase_Execute(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		input     *CreatePostInput
		setupRepo func() *stubPostRepository
		want      *PostOutput
		wantErr   error
	}

	cases := []testCase{
		{
			name:  "リポジトリが払い出した ID で投稿を返す",
			input: &CreatePostInput{Title: "A", Description: "a"},
			setupRepo: func() *stubPostRepository {
				return &stubPostRepository{
					createFunc: func(ctx context.Context, title, description string) (*post.Post, error) {
						if title != "A" || description != "a" {
							t.Fatalf("想定外の入力: %q %q", title, description)
						}
						return post.New(post.ID(1), title, description)
					},
				}
			},
			want: &PostOutput{ID: 1, Title: "A", Description: "a"},
		},
		{
			name:  "空文字のタイトルも受け付ける",
			input: &CreatePostInput{Title: "", Description: ""},
			setupRepo: func() *stubPostRepository {
				return &stubPostRepository{
					createFunc: func(ctx context.Context, title, description string) (*post.Post, error) {
						return post.New(post.ID(2), title, description)
					},
				}
			},
			want: &PostOutput{ID: 2},
		},
		{
			name:    "入力がnilなら ErrNilInput",
			input:   nil,
			wantErr: ErrNilInput,
			setupRepo: func() *stubPostRepository {
				return &stubPostRepository{}
			},
		},
		{
			name:    "リポジトリでの一般的なエラーはそのまま返す",
			input:   &CreatePostInput{Title: "A", Description: "a"},
			wantErr: errors.New("リポジトリで異常が発生"),
			setupRepo: func() *stubPostRepository {
				return &stubPostRepository{
					createFunc: func(ctx context.Context, title, description string) (*post.Post, error) {
						return nil, errors.New("リポジトリで異常が発生")
					},
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := NewCreatePostUsecase(tc.setupRepo())
			got, err := uc.Execute(context.Background(), tc.input)

			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("エラー %v を期待したが nil", tc.wantErr)
				}
				if tc.wantErr.Error() != err.Error() {
					t.Fatalf("期待しないエラー: want %v, got %v", tc.wantErr, err)
				}
				if got != nil {
					t.Fatalf("出力は nil を期待したが %#v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("想定外のエラー: %v", err)
			}
			if *got != *tc.want {
				t.Fatalf("返却値が想定外: want %+v, got %+v", tc.want, got)
			}
		})
	}
}

// stubPostRepository は PostRepository の簡易モック。
type stubPostRepository struct {
	listFunc   func(context.Context) ([]*post.Post, error)
	createFunc func(context.Context, string, string) (*post.Post, error)
	getFunc    func(context.Context, post.ID) (*post.Post, error)
	updateFunc func(context.Context, post.ID, string, string) (*post.Post, error)
	deleteFunc func(context.Context, post.ID) error
}

var _ repository.PostRepository = (*stubPostRepository)(nil)

func (s *stubPostRepository) List(ctx context.Context) ([]*post.Post, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return []*post.Post{}, nil
}

func (s *stubPostRepository) Create(ctx context.Context, title, description string) (*post.Post, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, title, description)
	}
	return nil, errors.New("create not configured")
}

func (s *stubPostRepository) Get(ctx context.Context, id post.ID) (*post.Post, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, id)
	}
	return nil, repository.ErrPostNotFound
}

func (s *stubPostRepository) Update(ctx context.Context, id post.ID, title, description string) (*post.Post, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, title, description)
	}
	return nil, repository.ErrPostNotFound
}

func (s *stubPostRepository) Delete(ctx context.Context, id post.ID) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return repository.ErrPostNotFound
}

func mustPost(t *testing.T, id int, title, description string) *post.Post {
	t.Helper()
	p, err := post.New(post.ID(id), title, description)
	if err != nil {
		t.Fatalf("failed to create domain post: %v", err)
	}
	return p
}
