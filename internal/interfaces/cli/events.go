package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/messaging/kafka"
)

// eventSource is satisfied by *kafka.Consumer.
type eventSource interface {
	Consume(ctx context.Context, handle kafka.EventHandler) error
	Close() error
}

// newEventSource is replaced in tests.
var newEventSource = func(cfg kafka.ConsumerConfig, cc *CLIContext) (eventSource, error) {
	return kafka.NewConsumer(cfg, cc.Logger)
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect analysis events published to Kafka",
	}

	var (
		brokers   []string
		topic     string
		group     string
		fromStart bool
		maxEvents int
	)
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print analysis.completed events as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := kafka.ConsumerConfig{
				Brokers:   cc.Config.Kafka.Brokers,
				Topic:     cc.Config.Kafka.Topic,
				GroupID:   group,
				FromStart: fromStart,
				MaxWait:   500 * time.Millisecond,
			}
			if len(brokers) > 0 {
				cfg.Brokers = brokers
			}
			if topic != "" {
				cfg.Topic = topic
			}

			src, err := newEventSource(cfg, cc)
			if err != nil {
				return err
			}
			defer src.Close()

			// tail runs until interrupted or --max events were printed; --timeout
			// does not apply.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			seen := 0
			out := cmd.OutOrStdout()
			return src.Consume(ctx, func(_ context.Context, env *kafka.EventEnvelope) error {
				if env.EventType != kafka.EventTypeAnalysisCompleted {
					return nil
				}
				if err := printEvent(out, cc.OutputFormat, env); err != nil {
					return err
				}
				seen++
				if maxEvents > 0 && seen >= maxEvents {
					cancel()
				}
				return nil
			})
		},
	}
	tail.Flags().StringSliceVar(&brokers, "brokers", nil, "Kafka brokers (default from config)")
	tail.Flags().StringVar(&topic, "topic", "", "topic (default from config)")
	tail.Flags().StringVar(&group, "group", "", "consumer group; empty reads without committing")
	tail.Flags().BoolVar(&fromStart, "from-start", false, "read from the earliest offset")
	tail.Flags().IntVar(&maxEvents, "max", 0, "stop after this many events (0 = unbounded)")

	cmd.AddCommand(tail)
	return cmd
}

func printEvent(w io.Writer, format string, env *kafka.EventEnvelope) error {
	if format == FormatJSON {
		return printJSON(w, env)
	}
	var p kafka.AnalysisCompletedPayload
	if err := env.DecodePayload(&p); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s herbs=[%s] compounds=%d degraded=%s hypotheses=%d\n",
		color.CyanString(env.Timestamp.Format(time.RFC3339)),
		p.AnalysisID,
		strings.Join(p.Herbs, ", "),
		p.CompoundCount,
		degradedLabel(p.DegradedCount),
		p.HypothesisCount,
	)
	return nil
}

func degradedLabel(n int) string {
	s := fmt.Sprint(n)
	if n > 0 {
		return color.YellowString(s)
	}
	return s
}

//Personal.AI order the ending
