package main

import (
	"log"

	_ "github.com/geoglue/mapsearch/docs"
	"github.com/geoglue/mapsearch/pkg/di"

	"github.com/joho/godotenv"
)

// @title			mapsearch geocoding proxy API
// @version		1.0
// @description	token-hiding proxy in front of the remote geocoding API.
func main() {
	// Local development keeps the access token in a .env file.
	_ = godotenv.Load()

	server, cleanup, err := di.InitializeSearchServer()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
