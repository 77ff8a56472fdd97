package main

import (
	"fmt"
	"os"

	"github.com/godilite/survey-dashboard/internal/config"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd(config.LoadFromEnv()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
