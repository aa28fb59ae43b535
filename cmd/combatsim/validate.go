package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-api/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content registry integrity",
	Long:  `Validate the built-in content tables: dice legality, class whitelist references, starting equipment, and talent class restrictions.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	registry := content.New()
	if err := registry.Validate(); err != nil {
		return err
	}

	fmt.Printf("content registry OK: %d classes, %d spells, %d abilities, %d items, %d monsters, %d talents\n",
		len(registry.Classes()),
		len(registry.Spells()),
		len(registry.Abilities()),
		len(registry.Items()),
		len(registry.Monsters()),
		len(registry.Talents()),
	)
	return nil
}
