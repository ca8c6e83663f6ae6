package main

import (
	"context"
	"log"

	"github.com/Apurer/go-gin-grubdash-api/internal/app/api"
)

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := api.Run(context.Background(), cfg); err != nil {
		log.Fatalf("api exited: %v", err)
	}
}
