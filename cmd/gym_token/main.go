package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/GymOps/internal/auth"
	"github.com/stpnv0/GymOps/internal/config"
	"github.com/stpnv0/GymOps/internal/domain"
)

func main() {
	role := flag.String("role", "admin", "Role: member, trainer or admin")
	subject := flag.String("subject", "", "Member or trainer id the token acts as")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	tokens := auth.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, err := tokens.Issue(domain.Principal{Role: domain.Role(*role), SubjectID: *subject})
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
