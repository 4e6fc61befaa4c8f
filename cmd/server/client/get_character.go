package client

import (
	"context"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a character sheet",
	Long:  `Show attributes, skills and derived totals for a character. Uses the selected character unless --character is set.`,
	RunE:  runGetCharacter,
}

func runGetCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &charsheetv1alpha1.GetCharacterRequest{
		PlayerId:    playerID,
		CharacterId: characterID,
	})
	if err != nil {
		return rpcError("get character", err)
	}

	printCharacter(resp.Character)
	printSummary(resp.Summary)
	return nil
}
