package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List the player's characters",
	RunE:  runListCharacters,
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &charsheetv1alpha1.ListCharactersRequest{
		PlayerId: playerID,
	})
	if err != nil {
		return rpcError("list characters", err)
	}

	fmt.Printf("Characters for %s (%d):\n\n", playerID, len(resp.Characters))
	for _, c := range resp.Characters {
		marker := " "
		if c.Id == resp.SelectedId {
			marker = "*"
		}

		total := int32(0)
		for _, v := range c.Attributes {
			total += v
		}
		fmt.Printf("%s %d (attribute points: %d)\n", marker, c.Id, total)
	}

	return nil
}
