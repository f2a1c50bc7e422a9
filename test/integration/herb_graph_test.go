//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	neo4jdriver "github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
)

func newGraph(t *testing.T) *repositories.HerbGraphRepo {
	t.Helper()
	drv, err := neo4jdriver.NewDriver(neo4jdriver.Config{
		URI:               startNeo4j(t),
		User:              "neo4j",
		Password:          neo4jPassword,
		Database:          "neo4j",
		ConnectionTimeout: 30 * time.Second,
	}, nil)
	require.NoError(t, err)

	repo := repositories.NewHerbGraphRepo(drv, nil)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestHerbGraph_UpsertAndQuery(t *testing.T) {
	ctx := context.Background()
	repo := newGraph(t)
	require.NoError(t, repo.HealthCheck(ctx))

	err := repo.UpsertHerb(ctx, repositories.HerbUpsert{
		Name:  "neem",
		Rasa:  []string{"tikta", "kashaya"},
		Virya: []string{"sheeta"},
		Dosha: "pacifies pitta and kapha",
		Compounds: []compound.Compound{
			{Name: "nimbin", PubChemID: compound.Int64(108058), MolecularFormula: compound.String("C30H36O9")},
			compound.NewErrorRecord("azadirachtin", "timeout"),
		},
	})
	require.NoError(t, err)
	// A second write must merge, not duplicate.
	require.NoError(t, repo.UpsertHerb(ctx, repositories.HerbUpsert{Name: "Neem", Rasa: []string{"tikta"}}))

	names, err := repo.ListHerbs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Neem"}, names)

	found, err := repo.SearchByProperty(ctx, herb.KindRasa, "Tikta")
	require.NoError(t, err)
	assert.Equal(t, []string{"Neem"}, found)

	_, err = repo.SearchByProperty(ctx, herb.KindVipaka, "katu")
	require.Error(t, err)

	g, err := repo.HerbGraph(ctx, "neem")
	require.NoError(t, err)
	// herb + 2 rasa + 1 virya + 1 compound; the degraded compound is skipped
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Relationships, 4)

	empty, err := repo.HerbGraph(ctx, "Mandrake")
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
}

func TestAnalysis_WritesBackToGraph(t *testing.T) {
	ctx := context.Background()
	repo := newGraph(t)
	kb := herb.NewCatalog()

	resolver, err := compound_resolver.NewResolver(nil, kb, compound_resolver.Config{Offline: true})
	require.NoError(t, err)
	svc, err := analysis.NewService(analysis.Deps{
		KnowledgeBase: kb,
		Extractor:     herb_extractor.NewExtractor(kb),
		Resolver:      resolver,
		DemoResolver:  resolver,
		Generator:     hypothesis.NewGenerator(),
		Graph:         repo,
	})
	require.NoError(t, err)

	_, err = svc.Analyze(ctx, "Turmeric with black pepper is bitter and heating")
	require.NoError(t, err)

	cat := catalog.NewService(kb, repo, resolver, nil)
	names, err := cat.ListHerbs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Turmeric", "Black Pepper"}, names)

	g, err := cat.Graph(ctx, "Turmeric")
	require.NoError(t, err)
	assert.NotEmpty(t, g.Nodes)
}

//Personal.AI order the ending
