package cmd

import (
	"github.com/mouse-blink/libwizard/internal/controller"
	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a previously saved report",
		Long:  "View the outcomes of a previous run saved with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes, err := reportStore.LoadReport(m.Path(args[0]))
			if err != nil {
				return err
			}

			view := uiFactory(cmd, false)
			if err := view.Start(controller.WithRoot(m.Path(args[0]))); err != nil {
				return err
			}

			for _, outcome := range outcomes {
				view.Report(outcome)
			}

			view.Close()

			return view.Wait()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
