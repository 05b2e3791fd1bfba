package post

import "errors"

// ID はストアが払い出す投稿の識別子。1 以上。
type ID int

var (
	// ErrInvalidID は 1 未満の ID が渡された際に返される。
	ErrInvalidID = errors.New("post: invalid id")
)

// Post はブログ投稿そのもの。
type Post struct {
	id          ID
	title       string
	description string
}

// New creates a Post with the given id, title and description.
// It returns ErrInvalidID if id is not positive. Title and description
// carry no content constraint.
func New(id ID, title, description string) (*Post, error) {
	if !id.IsValid() {
		return nil, ErrInvalidID
	}

	return &Post{
		id:          id,
		title:       title,
		description: description,
	}, nil
}

// ID は投稿の識別子を返す。
func (p *Post) ID() ID {
	return p.id
}

// Title はタイトルを返す。
func (p *Post) Title() string {
	return p.title
}

// Description は本文を返す。
func (p *Post) Description() string {
	return p.description
}

// Edit はタイトルと本文を上書きする。ID は変わらない。
func (p *Post) Edit(title, description string) {
	p.title = title
	p.description = description
}

// Clone は呼び出し側が自由に変更できる複製を返す。
func (p *Post) Clone() *Post {
	c := *p
	return &c
}

// IsValid は払い出し可能な値かどうかを返す。
func (id ID) IsValid() bool {
	return id > 0
}
