package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
)

func newDemoCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the fixed turmeric and black pepper demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd, cc)
			defer cancel()

			var res *client.AnalysisResult
			if local {
				svc, err := newLocalServices(cc.Config, cc.Logger)
				if err != nil {
					return err
				}
				out, err := svc.analysis.Demo(ctx)
				if err != nil {
					return err
				}
				res = &client.AnalysisResult{}
				if err := toWire(out, res); err != nil {
					return err
				}
			} else if res, err = cc.Client.Demo(ctx); err != nil {
				return err
			}
			return renderAnalysis(cmd.OutOrStdout(), cc.OutputFormat, res)
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "run in-process instead of calling the server")
	return cmd
}

//Personal.AI order the ending
