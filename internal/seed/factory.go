// Package seed provides helpers to create demo data for the newsroom
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"newsroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every seeded user can log in with.
const DemoPassword = "Newsroom!Demo2024"

// Options configures a seeding run.
type Options struct {
	Users              int
	Articles           int
	CommentsPerArticle int
	// MaxDays spreads article creation times over this many past days.
	MaxDays int
	// Seed makes generated content reproducible when non-zero.
	Seed int64
	// HashCost overrides the bcrypt cost; zero means bcrypt.DefaultCost.
	HashCost int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db    *gorm.DB
	opts  Options
	faker *gofakeit.Faker
	hash  string
	seq   int
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	cost := opts.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	// Every seeded user shares a password, so it is hashed once.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	return &Factory{
		db:    db,
		opts:  opts,
		faker: gofakeit.New(seed),
		hash:  string(hash),
	}, nil
}

// CreateUser constructs and persists a user with a unique, valid username.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	f.seq++
	name := usernameFrom(f.faker.FirstName(), f.seq)
	user := &models.User{
		Account: models.Account{
			Username: name,
			Email:    name + "@" + f.faker.DomainName(),
			Password: f.hash,
		},
		Profile: models.Profile{Age: f.faker.Number(13, 85)},
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return user, nil
}

// BuildArticle constructs an unsaved article by author with a realistic created_at spread.
func (f *Factory) BuildArticle(author *models.User) *models.Article {
	title := strings.TrimSuffix(f.faker.Sentence(f.faker.Number(3, 8)), ".")
	if len([]rune(title)) > models.MaxTitleLength {
		title = string([]rune(title)[:models.MaxTitleLength])
	}

	back := time.Duration(f.faker.Number(0, f.opts.MaxDays*24*60)) * time.Minute
	return &models.Article{
		Title:     title,
		Body:      f.faker.Paragraph(2, 4, 12, "\n\n"),
		AuthorID:  author.ID,
		CreatedAt: time.Now().Add(-back),
	}
}

// CreateArticle persists a generated article.
func (f *Factory) CreateArticle(author *models.User) (*models.Article, error) {
	article := f.BuildArticle(author)
	if err := f.db.Omit("Author").Create(article).Error; err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// CreateComment persists a generated comment on article, dated after it.
func (f *Factory) CreateComment(article *models.Article, author *models.User) (*models.Comment, error) {
	text := f.faker.Sentence(f.faker.Number(4, 20))
	if len([]rune(text)) > models.MaxCommentLength {
		text = string([]rune(text)[:models.MaxCommentLength])
	}

	since := time.Since(article.CreatedAt)
	offset := time.Duration(f.faker.Number(0, int(since/time.Minute))) * time.Minute
	comment := &models.Comment{
		Text:      text,
		ArticleID: article.ID,
		AuthorID:  author.ID,
		CreatedAt: article.CreatedAt.Add(offset),
	}
	if err := f.db.Omit("Author", "Article").Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func usernameFrom(first string, n int) string {
	clean := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, first)
	if clean == "" {
		clean = "user"
	}
	if len(clean) > 20 {
		clean = clean[:20]
	}
	return fmt.Sprintf("%s_%d", clean, n)
}
