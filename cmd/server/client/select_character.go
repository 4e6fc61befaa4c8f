package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var selectCharacterCmd = &cobra.Command{
	Use:   "select [character-id]",
	Short: "Select the character later commands act on",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelectCharacter,
}

func runSelectCharacter(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid character id %q: %w", args[0], err)
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SelectCharacter(ctx, &charsheetv1alpha1.SelectCharacterRequest{
		PlayerId:    playerID,
		CharacterId: int32(id),
	})
	if err != nil {
		return rpcError("select character", err)
	}

	fmt.Printf("Selected character %d\n", resp.Character.Id)
	return nil
}
