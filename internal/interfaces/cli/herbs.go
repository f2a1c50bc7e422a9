package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// herbSource is the subset of catalog operations the herbs commands use,
// served either by the SDK or by the in-process catalog.
type herbSource interface {
	ListHerbs(ctx context.Context) ([]string, error)
	Herb(ctx context.Context, name string) (*client.HerbDetail, error)
	Synergistic(ctx context.Context, name string, limit int) ([]string, error)
	Search(ctx context.Context, propertyType, value string) ([]string, error)
	CatalogHerbs(ctx context.Context) ([]string, error)
	SearchCatalog(ctx context.Context, propertyType, value string) ([]string, error)
	ByDosha(ctx context.Context, dosha string) ([]string, error)
}

type localHerbSource struct{ svc *localServices }

func (l localHerbSource) ListHerbs(ctx context.Context) ([]string, error) {
	return l.svc.catalog.ListHerbs(ctx)
}

func (l localHerbSource) Herb(ctx context.Context, name string) (*client.HerbDetail, error) {
	d, err := l.svc.catalog.Herb(ctx, name)
	if err != nil {
		return nil, err
	}
	out := &client.HerbDetail{}
	return out, toWire(d, out)
}

func (l localHerbSource) Synergistic(ctx context.Context, name string, limit int) ([]string, error) {
	return l.svc.catalog.Synergistic(ctx, name, limit)
}

func (l localHerbSource) Search(ctx context.Context, propertyType, value string) ([]string, error) {
	return l.svc.catalog.Search(ctx, propertyType, value)
}

func (l localHerbSource) CatalogHerbs(ctx context.Context) ([]string, error) {
	return l.svc.catalog.CatalogHerbs(ctx)
}

func (l localHerbSource) SearchCatalog(ctx context.Context, propertyType, value string) ([]string, error) {
	return l.svc.catalog.SearchCatalog(ctx, propertyType, value)
}

func (l localHerbSource) ByDosha(ctx context.Context, dosha string) ([]string, error) {
	return l.svc.catalog.ByDosha(ctx, dosha)
}

func newHerbsCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "herbs",
		Short: "Browse the herb knowledge base",
	}
	cmd.PersistentFlags().BoolVar(&local, "local", false, "read the built-in catalog instead of calling the server")

	// run resolves the source and the timeout context, then hands both to fn.
	run := func(fn func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			var src herbSource = cc.Client
			if local {
				svc, err := newLocalServices(cc.Config, cc.Logger)
				if err != nil {
					return err
				}
				src = localHerbSource{svc: svc}
			}
			ctx, cancel := commandContext(cmd, cc)
			defer cancel()
			return fn(ctx, cmd, src, cc.OutputFormat)
		}
	}

	var listGraph bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List every herb",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error {
			listFn := src.CatalogHerbs
			if listGraph {
				listFn = src.ListHerbs
			}
			names, err := listFn(ctx)
			if err != nil {
				return err
			}
			return renderHerbList(cmd.OutOrStdout(), format, names)
		}),
	}

	list.Flags().BoolVar(&listGraph, "graph", false, "list the herbs held by the graph store")

	show := &cobra.Command{
		Use:   "show <herb>",
		Short: "Show a herb's classical profile and modern correlations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return run(func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error {
				d, err := src.Herb(ctx, name)
				if err != nil {
					return err
				}
				return renderHerbDetail(cmd.OutOrStdout(), format, d)
			})(cmd, args)
		},
	}

	var searchGraph bool
	search := &cobra.Command{
		Use:   "search <property_type> <value>",
		Short: "Find herbs by a property field (rasa, guna, virya, vipaka, prabhava, therapeutic_actions, modern_compounds)",
		Example: `  ayurchem herbs search rasa tikta
  ayurchem herbs search virya heating`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error {
				searchFn := src.SearchCatalog
				if searchGraph {
					searchFn = src.Search
				}
				names, err := searchFn(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return renderHerbList(cmd.OutOrStdout(), format, names)
			})(cmd, args)
		},
	}
	search.Flags().BoolVar(&searchGraph, "graph", false, "search the property nodes of the graph store (rasa, guna, virya)")

	dosha := &cobra.Command{
		Use:   "dosha <vata|pitta|kapha>",
		Short: "List herbs whose dosha effect mentions the word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error {
				names, err := src.ByDosha(ctx, args[0])
				if err != nil {
					return err
				}
				return renderHerbList(cmd.OutOrStdout(), format, names)
			})(cmd, args)
		},
	}

	var limit int
	synergy := &cobra.Command{
		Use:   "synergy <herb>",
		Short: "List herbs sharing a dosha effect with the given herb",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.InvalidParam("--limit must be positive")
			}
			name := strings.Join(args, " ")
			return run(func(ctx context.Context, cmd *cobra.Command, src herbSource, format string) error {
				names, err := src.Synergistic(ctx, name, limit)
				if err != nil {
					return err
				}
				return renderHerbList(cmd.OutOrStdout(), format, names)
			})(cmd, args)
		},
	}
	synergy.Flags().IntVar(&limit, "limit", herb.DefaultSynergyLimit, "maximum number of herbs")

	cmd.AddCommand(list, show, search, dosha, synergy)
	return cmd
}

//Personal.AI order the ending
