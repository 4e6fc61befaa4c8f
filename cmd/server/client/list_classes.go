package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var listClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Show every class and whether the character qualifies",
	RunE:  runListClasses,
}

func runListClasses(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListClassEligibility(ctx, &charsheetv1alpha1.ListClassEligibilityRequest{
		PlayerId:    playerID,
		CharacterId: characterID,
	})
	if err != nil {
		return rpcError("list classes", err)
	}

	for _, ce := range resp.Classes {
		marker := ""
		if ce.Eligible {
			marker = " " + verdict(true, "(ELIGIBLE)", "")
		}
		fmt.Printf("%s%s\n", heading(ce.Class.Name), marker)
		printRequirements(ce.Class)
	}

	return nil
}
