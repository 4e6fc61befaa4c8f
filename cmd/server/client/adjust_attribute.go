package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var adjustAttributeCmd = &cobra.Command{
	Use:   "adjust-attribute [attribute] [delta]",
	Short: "Raise or lower an attribute",
	Long: `Change an attribute by delta. The change is refused when it would push
the attribute total past the cap or the attribute below zero. Examples:

  adjust-attribute Strength 1
  adjust-attribute Wisdom -2`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjustAttribute,
}

func runAdjustAttribute(_ *cobra.Command, args []string) error {
	delta, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", args[1], err)
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AdjustAttribute(ctx, &charsheetv1alpha1.AdjustAttributeRequest{
		PlayerId:    playerID,
		CharacterId: characterID,
		Attribute:   args[0],
		Delta:       int32(delta),
	})
	if err != nil {
		return rpcError("adjust attribute", err)
	}

	if resp.Applied {
		fmt.Printf("%s is now %d\n", args[0], resp.Character.Attributes[args[0]])
	} else {
		fmt.Printf("%s: %s stays at %d\n", badStyle.Render("Change refused"), args[0], resp.Character.Attributes[args[0]])
	}
	fmt.Printf("Attribute points: %d / %d\n", resp.Summary.AttributeTotal, resp.Summary.MaxAttributeTotal)

	return nil
}
