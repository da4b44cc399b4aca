package seed

import (
	"fmt"

	"newsroom/internal/middleware"
	"newsroom/internal/models"

	"gorm.io/gorm"
)

// Result counts what a seeding run created.
type Result struct {
	Users    int
	Articles int
	Comments int
}

// ClearAll removes every comment, article and user.
func ClearAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&models.Comment{}, &models.Article{}, &models.User{}} {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Seed creates users, articles spread across them and comments from random users.
func Seed(db *gorm.DB, opts Options) (Result, error) {
	var res Result
	if opts.Users <= 0 {
		return res, fmt.Errorf("at least one user is required")
	}

	f, err := NewFactory(db, opts)
	if err != nil {
		return res, err
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return res, err
		}
		users = append(users, u)
	}
	res.Users = len(users)
	middleware.Logger.Info("seeded users", "count", res.Users)

	for i := 0; i < opts.Articles; i++ {
		author := users[f.faker.Number(0, len(users)-1)]
		article, err := f.CreateArticle(author)
		if err != nil {
			return res, err
		}
		res.Articles++

		for j := 0; j < opts.CommentsPerArticle; j++ {
			commenter := users[f.faker.Number(0, len(users)-1)]
			if _, err := f.CreateComment(article, commenter); err != nil {
				return res, err
			}
			res.Comments++
		}
	}
	middleware.Logger.Info("seeded articles", "articles", res.Articles, "comments", res.Comments)

	return res, nil
}
