package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file  string
		local bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a text for herbs, properties, compounds and hypotheses",
		Long: "Analyze a text passed as arguments, read from --file, or piped on stdin\n" +
			"(--file -).  By default the text is sent to the API server; --local runs\n" +
			"the pipeline in-process.",
		Example: `  ayurchem analyze "Turmeric is bitter and heating"
  ayurchem analyze --file notes.txt --local -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args, file)
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
				out, err := svc.analysis.Analyze(ctx, text)
				if err != nil {
					return err
				}
				res = &client.AnalysisResult{}
				if err := toWire(out, res); err != nil {
					return err
				}
			} else {
				res, err = cc.Client.Analyze(ctx, text)
				if err != nil {
					return err
				}
			}
			cc.Logger.Debug("analysis rendered", logging.Int("herbs", len(res.Herbs)))
			return renderAnalysis(cmd.OutOrStdout(), cc.OutputFormat, res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file (- for stdin)")
	cmd.Flags().BoolVar(&local, "local", false, "run the pipeline in-process instead of calling the server")
	return cmd
}

// readText prefers --file, then arguments.  An empty result is rejected
// with the same message the server uses.
func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	var text string
	switch {
	case file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, errors.CodeInvalidParam, "read stdin")
		}
		text = string(b)
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeInvalidParam, "read file").WithDetail(file)
		}
		text = string(b)
	default:
		text = strings.Join(args, " ")
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.InvalidParam("No text provided")
	}
	return text, nil
}

//Personal.AI order the ending
