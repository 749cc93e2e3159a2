package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThoseGrapefruits/pacman/internal/buildinfo"
	"github.com/ThoseGrapefruits/pacman/internal/config"
	"github.com/ThoseGrapefruits/pacman/internal/maze"
	"github.com/ThoseGrapefruits/pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in mazes",
	Long:  `Shows every maze that can be passed to --layout.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Coins", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")
	for _, l := range layouts {
		size, coins := "?", "?"
		if m, err := maze.Parse(l.Rows); err == nil {
			size = fmt.Sprintf("%dx%d", m.Width(), m.Height())
			coins = fmt.Sprint(len(m.Coins()))
		}
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, l.ID, size, coins, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --layout <id>' to play a maze.")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a round would use, after the config file
search and the global flags. The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildinfo.Get()
		fmt.Println(info.String())
		fmt.Println(info.Description)
		fmt.Printf("Author: %s\n", info.Author)
	},
}
