// Package main provides admin management utilities for the newsroom.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"newsroom/internal/cache"
	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/admin migrate              - Create or update the schema")
	fmt.Println("  go run ./cmd/admin list-users           - List all users")
	fmt.Println("  go run ./cmd/admin delete-user <id>     - Delete a user with their articles and comments")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cache.InitRedis(cfg.RedisURL)
	defer func() { _ = cache.Close() }()

	users := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	switch os.Args[1] {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Schema is up to date")

	case "list-users":
		list, err := users.ListUsers(ctx, 1000, 0)
		if err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}
		for _, u := range list {
			fmt.Printf("  %d\t%s\t%s\tage %d\n", u.ID, u.Username, u.Email, u.Age)
		}

	case "delete-user":
		if len(os.Args) < 3 {
			usage()
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			log.Fatalf("Invalid user ID %q", os.Args[2])
		}
		if err := users.DeleteUser(ctx, uint(id)); err != nil {
			if models.IsNotFound(err) {
				fmt.Printf("User with ID %d not found\n", id)
				os.Exit(1)
			}
			log.Fatalf("Failed to delete user: %v", err)
		}
		fmt.Printf("Deleted user %d with their articles and comments\n", id)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		usage()
	}
}
