package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"biztime/internal/cli"
)

// @title BizTime API
// @version 1.0
// @description CRUD over companies and their invoices.
// @BasePath /
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
