package main

import (
	"furnimarket_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; environment variables may come from elsewhere.
	_ = godotenv.Load()

	app.Run()
}
