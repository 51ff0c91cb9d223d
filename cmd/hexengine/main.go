// Command hexengine plays Hex: "play" runs a line-oriented protocol
// session (or an interactive terminal game), "serve" exposes the same
// engine over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexmind/hexengine/internal/config"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hexengine",
		Short: "An MCTS Hex-playing engine",
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	return root
}
