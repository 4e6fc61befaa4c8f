package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var listDefinitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Show the attribute, skill and class tables",
	RunE:  runListDefinitions,
}

func runListDefinitions(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListDefinitions(ctx, &charsheetv1alpha1.ListDefinitionsRequest{})
	if err != nil {
		return rpcError("list definitions", err)
	}

	fmt.Printf("%s\n", heading("Attributes:"))
	for _, attr := range resp.Attributes {
		fmt.Printf("  - %s\n", attr)
	}

	fmt.Printf("\n%s\n", heading(fmt.Sprintf("Skills (%d):", len(resp.Skills))))
	for _, skill := range resp.Skills {
		fmt.Printf("  - %s (%s)\n", skill.Name, skill.Attribute)
	}

	fmt.Printf("\n%s\n", heading(fmt.Sprintf("Classes (%d):", len(resp.Classes))))
	for _, class := range resp.Classes {
		fmt.Printf("  %s\n", class.Name)
		printRequirements(class)
	}

	return nil
}
