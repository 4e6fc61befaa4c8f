package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var loadRosterCmd = &cobra.Command{
	Use:   "load",
	Short: "Reload the player's roster from storage",
	Long:  `Replace the server-side roster with what storage holds. Unsaved changes are discarded.`,
	RunE:  runLoadRoster,
}

func runLoadRoster(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LoadRoster(ctx, &charsheetv1alpha1.LoadRosterRequest{
		PlayerId: playerID,
	})
	if err != nil {
		return rpcError("load roster", err)
	}

	if resp.UsedDefault {
		fmt.Printf("Nothing stored for %s, started a new roster\n", playerID)
	} else {
		fmt.Printf("Loaded %d characters for %s\n", len(resp.Characters), playerID)
	}
	if resp.SavedAt != 0 {
		fmt.Printf("Last saved: %s\n", time.Unix(resp.SavedAt, 0).Format(time.RFC3339))
	}
	fmt.Printf("Selected character: %d\n", resp.SelectedId)

	return nil
}
