// Package catalog serves read-only herb queries.  The herb list, property
// search and neighbourhood queries read the graph store and come back empty
// when no live store is configured.  The static knowledge base answers herb
// detail, synergy and dosha queries, and its own list and search are exposed
// separately as CatalogHerbs and SearchCatalog.
package catalog

import (
	"context"
	"strings"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// SearchParamsMessage is returned when either search parameter is missing.
const SearchParamsMessage = "property_type and property_value required"

// GraphReader is the read side of the graph store.
type GraphReader interface {
	HerbGraph(ctx context.Context, name string) (repositories.Subgraph, error)
	SearchByProperty(ctx context.Context, kind herb.PropertyKind, value string) ([]string, error)
	ListHerbs(ctx context.Context) ([]string, error)
	Live() bool
}

// CompoundDescriber looks up compounds in the remote database.
type CompoundDescriber interface {
	Describe(ctx context.Context, name string) (*compound_resolver.Profile, error)
	SearchCompounds(ctx context.Context, property, value string) ([]int64, error)
}

// HerbDetail is a static record with its modern reading.
type HerbDetail struct {
	herb.Record
	ModernCorrelations []hypothesis.ModernCorrelation `json:"modern_correlations"`
	Synergistic        []string                       `json:"synergistic_herbs"`
}

// Service is the catalog use case.
type Service interface {
	ListHerbs(ctx context.Context) ([]string, error)
	Herb(ctx context.Context, name string) (*HerbDetail, error)
	Synergistic(ctx context.Context, name string, limit int) ([]string, error)
	Search(ctx context.Context, propertyType, value string) ([]string, error)
	CatalogHerbs(ctx context.Context) ([]string, error)
	SearchCatalog(ctx context.Context, propertyType, value string) ([]string, error)
	ByDosha(ctx context.Context, dosha string) ([]string, error)
	Graph(ctx context.Context, name string) (repositories.Subgraph, error)
	Compound(ctx context.Context, name string) (*compound_resolver.Profile, error)
	SearchCompounds(ctx context.Context, property, value string) ([]int64, error)
}

type serviceImpl struct {
	kb        herb.KnowledgeBase
	graph     GraphReader
	compounds CompoundDescriber
	logger    logging.Logger
}

// NewService builds the catalog.  A nil graph selects the no-op store.
func NewService(kb herb.KnowledgeBase, graph GraphReader, compounds CompoundDescriber, logger logging.Logger) Service {
	if graph == nil {
		graph = repositories.NewNopGraphStore()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{kb: kb, graph: graph, compounds: compounds, logger: logger.Named("catalog")}
}

// ListHerbs returns the herbs stored in the graph.  Without a live store, or
// when the query fails, the list is empty.
func (s *serviceImpl) ListHerbs(ctx context.Context) ([]string, error) {
	if !s.graph.Live() {
		return []string{}, nil
	}
	names, err := s.graph.ListHerbs(ctx)
	if err != nil {
		s.logger.Warn("graph herb list failed", logging.Err(err))
		return []string{}, nil
	}
	return nonNil(names), nil
}

// CatalogHerbs returns the fully described herbs of the static knowledge base.
func (s *serviceImpl) CatalogHerbs(_ context.Context) ([]string, error) {
	return nonNil(s.kb.Names()), nil
}

func (s *serviceImpl) Herb(_ context.Context, name string) (*HerbDetail, error) {
	rec, ok := s.kb.Lookup(name)
	if !ok {
		return nil, errors.New(errors.CodeHerbNotFound, "herb not found").WithDetail(name)
	}
	return &HerbDetail{
		Record:             rec,
		ModernCorrelations: hypothesis.ModernCorrelations(rec),
		Synergistic:        s.kb.Synergistic(rec.Name, herb.DefaultSynergyLimit),
	}, nil
}

func (s *serviceImpl) Synergistic(_ context.Context, name string, limit int) ([]string, error) {
	if _, ok := s.kb.Lookup(name); !ok {
		return nil, errors.New(errors.CodeHerbNotFound, "herb not found").WithDetail(name)
	}
	return s.kb.Synergistic(name, limit), nil
}

// Search matches value against a property node of the graph.  Only rasa,
// guna and virya are stored as nodes; other kinds, a missing store and a
// failed query all yield an empty list.
func (s *serviceImpl) Search(ctx context.Context, propertyType, value string) ([]string, error) {
	kind, err := parseSearch(propertyType, value)
	if err != nil {
		return nil, err
	}
	if !s.graph.Live() || !graphKind(kind) {
		return []string{}, nil
	}
	names, err := s.graph.SearchByProperty(ctx, kind, herb.Sanskrit(kind, value))
	if err != nil {
		s.logger.Warn("graph search failed",
			logging.String("property_type", string(kind)), logging.Err(err))
		return []string{}, nil
	}
	return nonNil(names), nil
}

// SearchCatalog matches value against one field of the static records.  It
// takes the English or the classical tag form.
func (s *serviceImpl) SearchCatalog(_ context.Context, propertyType, value string) ([]string, error) {
	kind, err := parseSearch(propertyType, value)
	if err != nil {
		return nil, err
	}
	names := s.kb.SearchByProperty(kind, value)
	if len(names) > 0 {
		return names, nil
	}
	seen := map[string]bool{}
	for _, alt := range englishForms(kind, value) {
		for _, n := range s.kb.SearchByProperty(kind, alt) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return nonNil(names), nil
}

func parseSearch(propertyType, value string) (herb.PropertyKind, error) {
	if strings.TrimSpace(propertyType) == "" || strings.TrimSpace(value) == "" {
		return "", errors.InvalidParam(SearchParamsMessage)
	}
	kind, ok := herb.ParsePropertyKind(propertyType)
	if !ok {
		return "", errors.New(errors.CodePropertyKindInvalid, "unsupported property type").WithDetail(propertyType)
	}
	return kind, nil
}

func (s *serviceImpl) ByDosha(_ context.Context, dosha string) ([]string, error) {
	if strings.TrimSpace(dosha) == "" {
		return nil, errors.InvalidParam("dosha is required")
	}
	return s.kb.ByDosha(dosha), nil
}

// Graph returns the stored neighbourhood of name, or an empty subgraph when
// the store is unavailable.
func (s *serviceImpl) Graph(ctx context.Context, name string) (repositories.Subgraph, error) {
	if !s.graph.Live() {
		return repositories.EmptySubgraph(), nil
	}
	g, err := s.graph.HerbGraph(ctx, herb.NormalizeName(name))
	if err != nil {
		s.logger.Warn("graph query failed", logging.String("herb", name), logging.Err(err))
		return repositories.EmptySubgraph(), nil
	}
	return g, nil
}

func (s *serviceImpl) Compound(ctx context.Context, name string) (*compound_resolver.Profile, error) {
	if s.compounds == nil {
		return nil, errors.New(errors.CodeRemoteLookupDisabled, "compound lookups are not configured")
	}
	return s.compounds.Describe(ctx, name)
}

func (s *serviceImpl) SearchCompounds(ctx context.Context, property, value string) ([]int64, error) {
	if s.compounds == nil {
		return nil, errors.New(errors.CodeRemoteLookupDisabled, "compound lookups are not configured")
	}
	return s.compounds.SearchCompounds(ctx, property, value)
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

func graphKind(k herb.PropertyKind) bool {
	return k == herb.KindRasa || k == herb.KindGuna || k == herb.KindVirya
}

// englishForms maps a classical tag back to the English forms stored in
// records.
func englishForms(kind herb.PropertyKind, value string) []string {
	v := strings.ToLower(strings.TrimSpace(value))
	var out []string
	for _, candidate := range herb.EnglishTags(kind) {
		if candidate != v && herb.Sanskrit(kind, candidate) == v {
			out = append(out, candidate)
		}
	}
	return out
}

//Personal.AI order the ending
