package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env with P2P_DOCS_PATH, P2P_ARTIFACTS_DIR, P2P_ADDR.
	_ = godotenv.Load()

	Execute()
}
