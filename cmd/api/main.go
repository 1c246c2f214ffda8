package main

import (
	"context"
	"log"

	"github.com/lunapup/adoption-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("adoption gate API failed: %v", err)
	}
}
