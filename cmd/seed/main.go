// Command seed creates or updates a staff account from flags.
//
// Usage:
//
//	seed -email agent@example.com -password secret -role agent
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/support-portal/backend/internal/config"
	"github.com/support-portal/backend/internal/db"
	"github.com/support-portal/backend/internal/rbac"
	"github.com/support-portal/backend/internal/repositories"
)

func main() {
	var (
		email    = flag.String("email", "", "staff email")
		password = flag.String("password", "", "plaintext password, hashed before storage")
		role     = flag.String("role", rbac.RoleAgent, "agent or admin")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -email <email> -password <password> [-role agent|admin]")
		os.Exit(2)
	}
	if *role != rbac.RoleAgent && *role != rbac.RoleAdmin {
		fmt.Fprintf(os.Stderr, "invalid role %q: must be agent or admin\n", *role)
		os.Exit(2)
	}

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	user, err := repositories.NewStaffRepo(pool).Upsert(ctx, *email, string(hash), *role)
	if err != nil {
		log.Fatal("failed to upsert staff user", zap.Error(err))
	}

	log.Info("staff user ready",
		zap.String("id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", user.Role),
	)
}
