// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-charsheet",
	Short: "RPG character sheet gRPC server",
	Long:  `RPG character sheet provides a gRPC interface for building characters: allocating attribute and skill points, checking class eligibility, and rolling skill checks.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
