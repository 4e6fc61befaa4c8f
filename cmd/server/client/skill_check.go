package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var skillCheckCmd = &cobra.Command{
	Use:   "check [skill] [dc]",
	Short: "Roll a d20 skill check against a difficulty class",
	Long: `Roll a skill check. Examples:

  check Athletics 15
  check "Animal Handling" 10`,
	Args: cobra.ExactArgs(2),
	RunE: runSkillCheck,
}

func runSkillCheck(_ *cobra.Command, args []string) error {
	dc, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid dc %q: %w", args[1], err)
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PerformSkillCheck(ctx, &charsheetv1alpha1.PerformSkillCheckRequest{
		PlayerId:        playerID,
		CharacterId:     characterID,
		Skill:           args[0],
		DifficultyClass: int32(dc),
	})
	if err != nil {
		return rpcError("perform skill check", err)
	}

	fmt.Printf("🎲 %s check for character %d\n", resp.Result.Skill, resp.CharacterId)
	fmt.Printf("%s\n", resp.Result.Breakdown)
	fmt.Printf("Result: %s\n", verdict(resp.Result.Success, "Success", "Failure"))

	return nil
}
