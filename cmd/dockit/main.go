// Package main provides the entry point for the DocKit CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dockit",
	Short: "DocKit document rendering service",
	Long:  "DocKit renders invoices, proposals, reports, letters, resumes, and freeform markdown from JSON data into self-contained styled HTML, served over a REST API or rendered locally.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
