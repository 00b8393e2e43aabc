package cli

import (
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.lua>",
		Short: "Run a Lua script with the time functions available",
		Long: `Run a Lua script. The script can call:

  saveTime(identifier [, player])
  getTime()
  loadTime(identifier [, player])
  compareTimes(a, b, unit)

A player is a name or a table with a nameTag field.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			return app.ScriptRuntime.RunFile(cmd.Context(), args[0])
		}),
	}
}
