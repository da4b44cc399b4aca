package models

import "time"

const (
	// MaxTitleLength is the maximum number of characters in an article title.
	MaxTitleLength = 255
	// MaxCommentLength is the maximum number of characters in a comment.
	MaxCommentLength = 1000
)

// Article represents an article written by a user.
type Article struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// CreatedAt is written once on insert and never updated.
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment represents a comment left on an article.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"column:comment;size:1000;not null" json:"comment"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	Article   *Article  `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleDetail is an article together with the comments attached to it.
type ArticleDetail struct {
	Article  *Article   `json:"article"`
	Comments []*Comment `json:"comments"`
}
