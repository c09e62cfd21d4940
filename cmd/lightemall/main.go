// Command lightemall is a terminal front end for the lightwire puzzle.
//
// Rotate tiles until every wire glows, moving the power station to reach the
// far corners of the board.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lightwire/config"
	"github.com/katalvlaran/lightwire/game"
)

func main() {
	if err := newRootCmd(play).Execute(); err != nil {
		os.Exit(1)
	}
}

// settings holds the raw flag values; only flags the user set override the
// config file.
type settings struct {
	configPath string
	width      int
	height     int
	seed       int64
	method     string
	lock       bool
	mute       bool
	debug      bool
}

// newRootCmd builds the lightemall command. run receives the merged
// configuration and the --debug flag.
func newRootCmd(run func(cfg config.Config, debugLog bool) error) *cobra.Command {
	var s settings
	cmd := &cobra.Command{
		Use:   "lightemall",
		Short: "Light every wire on a scrambled board",
		Long: `Play a lightwire puzzle in the terminal.

Settings come from the defaults, then the optional YAML file, then any
flag given on the command line.

Examples:
  lightemall --width 12 --height 8
  lightemall -c board.yaml --method prim
  lightemall --seed 42 --lock=false --mute`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, s.debug)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&s.configPath, "config", "c", "", "YAML settings file")
	fl.IntVar(&s.width, "width", 0, "Board width in tiles")
	fl.IntVar(&s.height, "height", 0, "Board height in tiles")
	fl.Int64VarP(&s.seed, "seed", "s", 0, "Board seed, 0 picks one from the clock")
	fl.StringVarP(&s.method, "method", "m", "", "Spanning tree algorithm: kruskal or prim")
	fl.BoolVar(&s.lock, "lock", false, "Freeze the board once solved")
	fl.BoolVar(&s.mute, "mute", false, "Disable the solve chime")
	fl.BoolVar(&s.debug, "debug", false, "Write logs to logs/lightemall.log")

	return cmd
}

// resolve merges defaults, the config file and changed flags, in increasing
// priority.
func (s *settings) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Width = s.width
	}
	if fl.Changed("height") {
		cfg.Height = s.height
	}
	if fl.Changed("seed") {
		cfg.Seed = s.seed
	}
	if fl.Changed("method") {
		cfg.Method = s.method
	}
	if fl.Changed("lock") {
		cfg.LockOnSolve = s.lock
	}
	if fl.Changed("mute") {
		cfg.Mute = s.mute
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// play opens the terminal and runs the game until the player quits.
func play(cfg config.Config, debugLog bool) error {
	var screen tcell.Screen

	// Restore the terminal before printing a crash.
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLIGHTEMALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if logFile := setupLogging(debugLog); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(
		game.WithMethod(cfg.Method),
		game.WithLockOnSolve(cfg.LockOnSolve),
		game.WithLogger(log),
	)
	if _, err := g.Generate(cfg.Width, cfg.Height, seed); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	c := newChime(cfg.Mute)
	defer c.close()

	newApp(screen, g, c).run(time.Duration(cfg.TickMS) * time.Millisecond)
	return nil
}
