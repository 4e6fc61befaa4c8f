// Package client provides commands for driving the charsheet gRPC service
// from a terminal
package client

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Target flags
	playerID    string
	characterID int32
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character sheet service",
	Long: `Client commands make real gRPC requests against a running server.
The server keeps one roster per player in memory, so successive commands for
the same --player build on each other until the roster is saved.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player", "player", "Player whose roster to use")
	ClientCmd.PersistentFlags().Int32Var(&characterID, "character", 0, "Character ID (0 means the selected character)")

	// Roster commands
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(addCharacterCmd)
	ClientCmd.AddCommand(selectCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(loadRosterCmd)
	ClientCmd.AddCommand(saveRosterCmd)

	// Allocation commands
	ClientCmd.AddCommand(adjustAttributeCmd)
	ClientCmd.AddCommand(adjustSkillCmd)

	// Evaluation commands
	ClientCmd.AddCommand(checkEligibilityCmd)
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(skillCheckCmd)
	ClientCmd.AddCommand(listDefinitionsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createCharacterClient creates a character service client
func createCharacterClient() (charsheetv1alpha1.CharacterServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return charsheetv1alpha1.NewCharacterServiceClient(conn), cleanup, nil
}

// rpcError reports a failed call with the service's error code, message and
// any metadata the server attached
func rpcError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		return fmt.Errorf("failed to %s: %w %v", action, converted, meta)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

// attributeOrder is the display order for attributes
var attributeOrder = []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}

func printCharacter(c *charsheetv1alpha1.Character) {
	if c == nil {
		return
	}

	fmt.Printf("Character %d\n", c.Id)
	fmt.Printf("\n%s\n", heading("Attributes:"))
	for _, attr := range attributeOrder {
		fmt.Printf("  - %s: %d\n", attr, c.Attributes[attr])
	}

	skills := make([]string, 0, len(c.Skills))
	for name := range c.Skills {
		skills = append(skills, name)
	}
	sort.Strings(skills)

	fmt.Printf("\n%s\n", heading("Skills:"))
	for _, name := range skills {
		fmt.Printf("  - %s: %d\n", name, c.Skills[name])
	}
}

func printSummary(s *charsheetv1alpha1.CharacterSummary) {
	if s == nil {
		return
	}

	fmt.Printf("\n%s\n", heading("Totals:"))
	fmt.Printf("  - Attribute points: %d / %d\n", s.AttributeTotal, s.MaxAttributeTotal)
	fmt.Printf("  - Skill points: %d spent, %d available of %d\n",
		s.SkillPointsSpent, s.SkillPointsAvailable, s.SkillBudget)

	fmt.Printf("\n%s\n", heading("Modifiers:"))
	for _, attr := range attributeOrder {
		fmt.Printf("  - %s: %+d\n", attr, s.Modifiers[attr])
	}
}
