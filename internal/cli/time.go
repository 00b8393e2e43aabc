package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/timestamper/internal/model"
)

// nowArg stands for the current time wherever a saved identifier is expected
const nowArg = "now"

func playerHandle(name string) model.PlayerHandle {
	if name == "" {
		return nil
	}
	return model.Player(name)
}

func newSaveCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "save <identifier>",
		Short: "Save the current time under an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			if err := app.TimeService.SaveTime(cmd.Context(), args[0], playerHandle(player)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Saved %s", args[0]))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&player, "player", "p", "", "Scope the time to a player")
	return cmd
}

func newLoadCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "load <identifier>",
		Short: "Show a saved time",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			item, ok := app.TimeService.LoadTime(cmd.Context(), args[0], playerHandle(player))
			if !ok {
				return fmt.Errorf("%w: %s", model.ErrTimeNotFound, args[0])
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(item)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&player, "player", "p", "", "Load the player's time")
	return cmd
}

func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current time in every unit",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(app.TimeService.GetTime())
			return nil
		}),
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved times",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			records := app.TimeService.ListTimes(cmd.Context())

			result := TimeList{
				Objective: app.TimeService.Objective(),
				Times:     make([]TimeEntry, 0, len(records)),
			}
			for _, r := range records {
				result.Times = append(result.Times, TimeEntry{
					Identifier:   r.Identifier,
					Player:       r.Player,
					Milliseconds: float64(r.Timestamp),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		}),
	}
}

func newCompareCmd() *cobra.Command {
	var (
		player string
		unit   string
	)

	cmd := &cobra.Command{
		Use:   "compare <identifier|now> <identifier|now>",
		Short: "Show the difference between two times",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			parsed, err := model.ParseTimeUnit(unit)
			if err != nil {
				return err
			}

			a, err := resolveTime(cmd, args[0], player)
			if err != nil {
				return err
			}
			b, err := resolveTime(cmd, args[1], player)
			if err != nil {
				return err
			}

			diff, err := app.TimeService.CompareTimes(a, b, parsed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(CompareResult{A: args[0], B: args[1], Unit: string(parsed), Difference: diff})
			return nil
		}),
	}

	cmd.Flags().StringVarP(&player, "player", "p", "", "Load saved times for this player")
	cmd.Flags().StringVarP(&unit, "unit", "u", string(model.UnitSeconds), "Unit of the difference")
	return cmd
}

// resolveTime returns the current time for "now", otherwise the saved time
func resolveTime(cmd *cobra.Command, arg, player string) (model.TimeItem, error) {
	if arg == nowArg {
		return app.TimeService.GetTime(), nil
	}
	item, ok := app.TimeService.LoadTime(cmd.Context(), arg, playerHandle(player))
	if !ok {
		return model.TimeItem{}, fmt.Errorf("%w: %s", model.ErrTimeNotFound, arg)
	}
	return item, nil
}
