package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var addCharacterCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a baseline character and select it",
	RunE:  runAddCharacter,
}

func runAddCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AddCharacter(ctx, &charsheetv1alpha1.AddCharacterRequest{
		PlayerId: playerID,
	})
	if err != nil {
		return rpcError("add character", err)
	}

	fmt.Printf("Added and selected character %d\n", resp.Character.Id)
	return nil
}
