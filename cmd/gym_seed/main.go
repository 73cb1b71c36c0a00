package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/GymOps/internal/app"
	"github.com/stpnv0/GymOps/internal/config"
	"github.com/stpnv0/GymOps/internal/seed"
	"github.com/wb-go/wbf/logger"
)

func main() {
	path := flag.String("file", "seed.yaml", "Path to the seed YAML file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	f, err := seed.Load(*path)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	services, closeStorage, err := app.NewServices(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	seedLog, err := logger.InitLogger(cfg.Logger.LogEngine(), "GymOps-seed", cfg.Gin.Mode, logger.WithLevel(cfg.Logger.LogLevel()))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	seeder := seed.NewSeeder(services.Directory, services.Schedule, services.Asset, seedLog)
	res, err := seeder.Apply(context.Background(), f)
	if err != nil {
		log.Fatalf("seed apply: %v", err)
	}

	for key, id := range res.Members {
		log.Printf("member %s: %s", key, id)
	}
	for key, id := range res.Trainers {
		log.Printf("trainer %s: %s", key, id)
	}
	for key, id := range res.Rooms {
		log.Printf("room %s: %s", key, id)
	}
}
