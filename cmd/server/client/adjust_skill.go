package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
)

var adjustSkillCmd = &cobra.Command{
	Use:   "adjust-skill [skill] [delta]",
	Short: "Spend or refund skill points",
	Long: `Change a skill by delta. Spending is refused when no skill points are
available. Examples:

  adjust-skill Perception 1
  adjust-skill "Sleight of Hand" -1`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjustSkill,
}

func runAdjustSkill(_ *cobra.Command, args []string) error {
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

	resp, err := client.AdjustSkill(ctx, &charsheetv1alpha1.AdjustSkillRequest{
		PlayerId:    playerID,
		CharacterId: characterID,
		Skill:       args[0],
		Delta:       int32(delta),
	})
	if err != nil {
		return rpcError("adjust skill", err)
	}

	if resp.Applied {
		fmt.Printf("%s is now %d\n", args[0], resp.Character.Skills[args[0]])
	} else {
		fmt.Printf("%s: no skill points available\n", badStyle.Render("Change refused"))
	}
	fmt.Printf("Skill points available: %d of %d\n", resp.Summary.SkillPointsAvailable, resp.Summary.SkillBudget)

	return nil
}
