package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var checkEligibilityCmd = &cobra.Command{
	Use:   "eligible [class]",
	Short: "Check whether the character meets a class's requirements",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckEligibility,
}

func runCheckEligibility(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CheckEligibility(ctx, &charsheetv1alpha1.CheckEligibilityRequest{
		PlayerId:    playerID,
		CharacterId: characterID,
		ClassName:   args[0],
	})
	if err != nil {
		return rpcError("check eligibility", err)
	}

	fmt.Printf("%s: %s\n", heading(resp.Class.Name), verdict(resp.Eligible, "ELIGIBLE", "not eligible"))
	printRequirements(resp.Class)

	return nil
}

func printRequirements(class *charsheetv1alpha1.ClassDefinition) {
	for _, attr := range attributeOrder {
		if score, ok := class.Requirements[attr]; ok {
			fmt.Printf("  - %s: %d\n", mutedStyle.Render(attr), score)
		}
	}
}
