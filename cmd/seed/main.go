// Command main fills the newsroom database with demo data.
package main

import (
	"flag"
	"log"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numArticles := flag.Int("articles", 60, "Number of articles to create")
	numComments := flag.Int("comments", 4, "Comments per article")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible content (0 = time based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.ClearAll(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	res, err := seed.Seed(db, seed.Options{
		Users:              *numUsers,
		Articles:           *numArticles,
		CommentsPerArticle: *numComments,
		Seed:               *randSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Created %d users, %d articles, %d comments", res.Users, res.Articles, res.Comments)
	log.Printf("All demo users have the password: %s", seed.DemoPassword)
}
