package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var saveRosterCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the player's roster",
	RunE:  runSaveRoster,
}

func runSaveRoster(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SaveRoster(ctx, &charsheetv1alpha1.SaveRosterRequest{
		PlayerId: playerID,
	})
	if err != nil {
		return rpcError("save roster", err)
	}

	fmt.Printf("Saved %d characters for %s\n", resp.Count, playerID)
	return nil
}
