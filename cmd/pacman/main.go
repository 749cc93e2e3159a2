// pacman is a maze-chase game for the terminal.
//
// Usage:
//
//	pacman                  - Play (same as "pacman play")
//	pacman play             - Play in this terminal
//	pacman serve            - Start an SSH server, one game per session
//	pacman list             - List the built-in mazes
//	pacman config           - Print the effective configuration
//	pacman version          - Show build information
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--layout <name>       - Built-in maze to play
//	--tick-rate <dur>     - Advance on a timer (0 = one tick per move)
//	-v, --verbose         - Diagnostic footer; repeat for actor coordinates
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ThoseGrapefruits/pacman/internal/buildinfo"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagTickRate   time.Duration
	flagVerbose    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   buildinfo.Name,
	Short: buildinfo.Description,
	Long: `pacman is a terminal maze-chase game: steer with the arrow keys, eat
every coin and avoid the ghosts. A big coin lets you eat them for a while.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  list     - Show the built-in mazes
  config   - Print the effective configuration
  version  - Show build information

Examples:
  pacman
  pacman play --layout small --difficulty easy
  pacman play --tick-rate 150ms -vv
  pacman serve --ssh :2222`,
	Version:       buildinfo.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLayout, "layout", "", "Built-in maze (see 'pacman list')")
	pf.DurationVar(&flagTickRate, "tick-rate", 0, "Tick interval; 0 ticks once per move")
	pf.CountVarP(&flagVerbose, "verbose", "v", "Show diagnostics (repeat for more)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
