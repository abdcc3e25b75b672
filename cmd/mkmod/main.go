// Command mkmod creates a bootstrap moderator account. The system needs at
// least one moderator, and the role toggle refuses to demote the last one,
// so the first moderator has to come from outside the API.
//
// Usage: mkmod <email> <nickname> <password>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"jokebox/src/core/domain"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/logger"
	"jokebox/src/infra/repo"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: mkmod <email> <nickname> <password>")
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		log.Fatalf("mkmod: %v", err)
	}
}

func run(email, nickname, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	ctx := context.Background()
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	r := repo.NewPostgresRepository(pg, log)
	user, err := r.CreateUser(ctx, email, nickname, string(hash), domain.RoleModerator)
	if err != nil {
		return err
	}

	fmt.Printf("moderator %q created with id %d\n", user.Nickname, user.ID)
	return nil
}
