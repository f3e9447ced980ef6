// Command seed creates the admin account and a pair of sample published
// posts. It is idempotent: existing records are left untouched.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
	"github.com/seobuddy/seobuddy-api/internal/infrastructure/config"
	mongodb "github.com/seobuddy/seobuddy-api/internal/infrastructure/db/mongo"
	"github.com/seobuddy/seobuddy-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	seedAdmin(ctx, mongodb.NewUserRepository(db), adminEmail, adminPassword, log)
	seedPosts(ctx, mongodb.NewPostRepository(db), log)

	log.Info().Msg("seed complete")
}

func seedAdmin(ctx context.Context, repo ports.UserRepository, email, password string, log zerolog.Logger) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         "SeoBuddy Admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		log.Info().Str("email", email).Msg("admin already present")
	case err != nil:
		log.Fatal().Err(err).Msg("create admin")
	default:
		log.Info().Str("email", email).Msg("admin created")
	}
}

var samplePosts = []struct {
	title   string
	excerpt string
	body    string
}{
	{
		title:   "Five On-Page Fixes That Move Rankings",
		excerpt: "The highest-leverage on-page changes we apply to every new client site.",
		body:    "Most sites we audit leak ranking potential in the same five places: titles, internal links, heading structure, image alt text, and page speed. Here is how we fix each one.",
	},
	{
		title:   "How We Audit a Site in One Afternoon",
		excerpt: "A walkthrough of the SeoBuddy technical audit checklist.",
		body:    "A useful audit does not need a week. With a crawler, the Search Console export, and this checklist, one afternoon surfaces ninety percent of the problems worth fixing.",
	},
}

func seedPosts(ctx context.Context, repo ports.PostRepository, log zerolog.Logger) {
	now := time.Now().UTC()
	for _, sp := range samplePosts {
		_, err := repo.Create(ctx, &domain.Post{
			Title:       sp.title,
			Slug:        slug.Make(sp.title),
			Excerpt:     sp.excerpt,
			Body:        sp.body,
			Status:      domain.PostPublished,
			PublishedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		switch {
		case errors.Is(err, domain.ErrSlugExists):
			log.Info().Str("title", sp.title).Msg("post already present")
		case err != nil:
			log.Fatal().Err(err).Msg("create post")
		default:
			log.Info().Str("title", sp.title).Msg("post created")
		}
	}
}
