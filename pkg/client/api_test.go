package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	apihttp "github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
)

// newOfflineAPI serves the real route tree backed by the static catalog.
func newOfflineAPI(t *testing.T) *client.Client {
	t.Helper()
	kb := herb.NewCatalog()
	resolver, err := compound_resolver.NewResolver(nil, kb, compound_resolver.Config{Offline: true})
	require.NoError(t, err)
	asvc, err := analysis.NewService(analysis.Deps{
		KnowledgeBase: kb,
		Extractor:     herb_extractor.NewExtractor(kb),
		Resolver:      resolver,
		DemoResolver:  resolver,
		Generator:     hypothesis.NewGenerator(),
	})
	require.NoError(t, err)

	router := apihttp.NewRouter(apihttp.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(asvc, nil, 0),
		HerbHandler:     handlers.NewHerbHandler(catalog.NewService(kb, nil, resolver, nil), nil),
		HealthHandler:   handlers.NewHealthHandler("test"),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c, err := client.NewClient(srv.URL, client.WithRetryMax(0))
	require.NoError(t, err)
	return c
}

func TestAPI_AnalyzeDemo(t *testing.T) {
	c := newOfflineAPI(t)
	ctx := context.Background()

	demo, err := c.Demo(ctx)
	require.NoError(t, err)
	assert.Empty(t, demo.ID)
	assert.ElementsMatch(t, []string{"Turmeric", "Black Pepper"}, demo.Herbs)
	require.Len(t, demo.Compounds["Turmeric"], 3)
	degraded := 0
	for _, list := range demo.Compounds {
		for _, cpd := range list {
			if cpd.Degraded() {
				degraded++
			}
		}
	}
	assert.Equal(t, 4, degraded)

	res, err := c.Analyze(ctx, "Neem is bitter and cooling.")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, []string{"Neem"}, res.Herbs)
	assert.Contains(t, res.Properties.Rasa, "tikta")

	_, err = c.Analyze(ctx, "  ")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "No text provided", apiErr.Message)
}

func TestAPI_Catalog(t *testing.T) {
	c := newOfflineAPI(t)
	ctx := context.Background()

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)

	stored, err := c.ListHerbs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, stored)

	names, err := c.CatalogHerbs(ctx)
	require.NoError(t, err)
	assert.Equal(t, herb.NewCatalog().Names(), names)

	d, err := c.Herb(ctx, "Turmeric")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric", d.Name)
	assert.NotEmpty(t, d.ModernCorrelations)

	_, err = c.Herb(ctx, "Mandrake")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())

	syn, err := c.Synergistic(ctx, "Turmeric", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(syn), 2)

	found, err := c.Search(ctx, "rasa", "tikta")
	require.NoError(t, err)
	assert.Equal(t, []string{}, found)

	found, err = c.SearchCatalog(ctx, "modern_compounds", "curcumin")
	require.NoError(t, err)
	assert.Equal(t, []string{"Turmeric"}, found)

	kapha, err := c.ByDosha(ctx, "kapha")
	require.NoError(t, err)
	assert.Contains(t, kapha, "Turmeric")

	g, err := c.Graph(ctx, "Turmeric")
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)

	p, err := c.Compound(ctx, "curcumin")
	require.NoError(t, err)
	require.NotNil(t, p.Details.MolecularFormula)
	assert.Equal(t, "C21H20O6", *p.Details.MolecularFormula)

	_, err = c.SearchCompounds(ctx, "MolecularFormula", "C21H20O6")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

//Personal.AI order the ending
