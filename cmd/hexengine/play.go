package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexmind/hexengine/internal/config"
	"github.com/hexmind/hexengine/internal/engine"
	"github.com/hexmind/hexengine/internal/logging"
	"github.com/hexmind/hexengine/internal/textproto"
	"github.com/hexmind/hexengine/pkg/hexboard"
)

func newPlayCmd() *cobra.Command {
	var protocol bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			z, err := logging.New(cfg.LogMode)
			if err != nil {
				return err
			}
			defer z.Sync() //nolint:errcheck
			logger := logging.NewEngineLogger(z)

			eng := engine.New(logger)
			humanColor := hexboard.ColorA
			if cfg.HumanColor == "B" {
				humanColor = hexboard.ColorB
			}
			difficulty, ok := engine.ParseDifficulty(cfg.Difficulty)
			if !ok {
				difficulty = engine.Medium
			}
			game := eng.NewGame(cfg.BoardSize, humanColor, difficulty)

			if protocol {
				return textproto.Run(os.Stdin, os.Stdout, game, logger)
			}
			return runInteractive(game)
		},
	}

	cmd.Flags().BoolVar(&protocol, "protocol", false, "speak the line protocol on stdin/stdout instead of an interactive terminal game")
	return cmd
}

func runInteractive(game *engine.Game) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(renderBoard(game.Board))

	for !game.Board.IsTerminal() {
		if game.ToMove == game.HumanColor {
			fmt.Printf("your move (%s to play): ", game.ToMove)
			if !scanner.Scan() {
				return scanner.Err()
			}
			if err := game.HumanMove(scanner.Text()); err != nil {
				fmt.Println(err)
				continue
			}
		} else {
			move, timedOut, err := game.EngineMove()
			if err != nil {
				return err
			}
			if timedOut {
				fmt.Printf("engine plays %s (search timed out, fell back to a center-biased move)\n", move)
			} else {
				fmt.Printf("engine plays %s\n", move)
			}
		}
		fmt.Println(renderBoard(game.Board))
	}

	fmt.Printf("%s wins\n", game.Board.Winner())
	return nil
}
