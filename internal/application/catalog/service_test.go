package catalog

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

type MockGraphReader struct {
	mock.Mock
}

func (m *MockGraphReader) HerbGraph(ctx context.Context, name string) (repositories.Subgraph, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(repositories.Subgraph), args.Error(1)
}

func (m *MockGraphReader) SearchByProperty(ctx context.Context, kind herb.PropertyKind, value string) ([]string, error) {
	args := m.Called(ctx, kind, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGraphReader) ListHerbs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGraphReader) Live() bool { return m.Called().Bool(0) }

func newOfflineService(t *testing.T, graph GraphReader) Service {
	t.Helper()
	kb := herb.NewCatalog()
	r, err := compound_resolver.NewResolver(nil, kb, compound_resolver.Config{Offline: true})
	require.NoError(t, err)
	return NewService(kb, graph, r, nil)
}

func TestListHerbs_EmptyWithoutGraph(t *testing.T) {
	names, err := NewService(herb.NewCatalog(), nil, nil, nil).ListHerbs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestListHerbs_FromLiveGraph(t *testing.T) {
	g := new(MockGraphReader)
	g.On("Live").Return(true)
	g.On("ListHerbs", mock.Anything).Return([]string{"Black Pepper", "Turmeric"}, nil)

	names, err := newOfflineService(t, g).ListHerbs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Black Pepper", "Turmeric"}, names)
}

func TestListHerbs_GraphFailureIsEmpty(t *testing.T) {
	g := new(MockGraphReader)
	g.On("Live").Return(true)
	g.On("ListHerbs", mock.Anything).Return(nil, stderrors.New("timeout"))

	names, err := newOfflineService(t, g).ListHerbs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestCatalogHerbs(t *testing.T) {
	g := new(MockGraphReader)

	names, err := newOfflineService(t, g).CatalogHerbs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, herb.NewCatalog().Names(), names)
	g.AssertNotCalled(t, "ListHerbs", mock.Anything)
}

func TestHerb(t *testing.T) {
	svc := newOfflineService(t, nil)

	d, err := svc.Herb(context.Background(), "turmeric")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric", d.Name)
	assert.Len(t, d.ModernCorrelations, 6)
	assert.NotContains(t, d.Synergistic, "Turmeric")
	assert.LessOrEqual(t, len(d.Synergistic), herb.DefaultSynergyLimit)

	_, err = svc.Herb(context.Background(), "Mandrake")
	assert.True(t, errors.IsCode(err, errors.CodeHerbNotFound))
}

func TestSynergistic(t *testing.T) {
	svc := newOfflineService(t, nil)

	names, err := svc.Synergistic(context.Background(), "Turmeric", 2)
	require.NoError(t, err)
	assert.Len(t, names, 2)

	_, err = svc.Synergistic(context.Background(), "Mandrake", 0)
	assert.True(t, errors.IsNotFound(err))
}

func TestSearch_Validation(t *testing.T) {
	svc := newOfflineService(t, nil)

	for _, search := range []func(context.Context, string, string) ([]string, error){svc.Search, svc.SearchCatalog} {
		_, err := search(context.Background(), "", "bitter")
		assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
		_, err = search(context.Background(), "rasa", " ")
		assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
		_, err = search(context.Background(), "colour", "red")
		assert.True(t, errors.IsCode(err, errors.CodePropertyKindInvalid))
	}
}

func TestSearch_EmptyWithoutGraph(t *testing.T) {
	svc := NewService(herb.NewCatalog(), nil, nil, nil)

	names, err := svc.Search(context.Background(), "rasa", "bitter")
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)

	names, err = svc.Search(context.Background(), "modern_compounds", "curcumin")
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestSearch_LiveGraph(t *testing.T) {
	g := new(MockGraphReader)
	g.On("Live").Return(true)
	g.On("SearchByProperty", mock.Anything, herb.KindRasa, "tikta").Return([]string{"Neem"}, nil)

	names, err := newOfflineService(t, g).Search(context.Background(), "rasa", "Bitter")
	require.NoError(t, err)
	assert.Equal(t, []string{"Neem"}, names)
	g.AssertExpectations(t)
}

func TestSearch_LiveGraphFailureIsEmpty(t *testing.T) {
	g := new(MockGraphReader)
	g.On("Live").Return(true)
	g.On("SearchByProperty", mock.Anything, herb.KindGuna, "laghu").Return(nil, stderrors.New("down"))

	names, err := newOfflineService(t, g).Search(context.Background(), "guna", "laghu")
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestSearch_NonGraphKindIsEmpty(t *testing.T) {
	g := new(MockGraphReader)
	g.On("Live").Return(true)

	names, err := newOfflineService(t, g).Search(context.Background(), "modern_compounds", "curcumin")
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
	g.AssertNotCalled(t, "SearchByProperty", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchCatalog_AcceptsClassicalTags(t *testing.T) {
	svc := newOfflineService(t, nil)

	english, err := svc.SearchCatalog(context.Background(), "rasa", "bitter")
	require.NoError(t, err)
	assert.Contains(t, english, "Turmeric")
	assert.Contains(t, english, "Neem")

	classical, err := svc.SearchCatalog(context.Background(), "rasa", "tikta")
	require.NoError(t, err)
	assert.Equal(t, english, classical)

	hot, err := svc.SearchCatalog(context.Background(), "virya", "ushna")
	require.NoError(t, err)
	assert.Contains(t, hot, "Black Pepper")
	assert.NotContains(t, hot, "Neem")

	compounds, err := svc.SearchCatalog(context.Background(), "modern_compounds", "curcumin")
	require.NoError(t, err)
	assert.Equal(t, []string{"Turmeric"}, compounds)

	none, err := svc.SearchCatalog(context.Background(), "prabhava", "levitation")
	require.NoError(t, err)
	assert.Equal(t, []string{}, none)
}

func TestByDosha(t *testing.T) {
	svc := newOfflineService(t, nil)
	names, err := svc.ByDosha(context.Background(), "Kapha")
	require.NoError(t, err)
	assert.Contains(t, names, "Turmeric")

	_, err = svc.ByDosha(context.Background(), "")
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	svc := newOfflineService(t, nil)
	g, err := svc.Graph(context.Background(), "Turmeric")
	require.NoError(t, err)
	assert.Equal(t, repositories.EmptySubgraph(), g)

	live := new(MockGraphReader)
	live.On("Live").Return(true)
	want := repositories.Subgraph{
		Nodes:         []repositories.GraphNode{{ID: "Black Pepper", Label: "Herb"}},
		Relationships: []repositories.GraphRelationship{},
	}
	live.On("HerbGraph", mock.Anything, "Black Pepper").Return(want, nil)
	live.On("HerbGraph", mock.Anything, "Neem").Return(repositories.Subgraph{}, stderrors.New("down"))

	got, err := newOfflineService(t, live).Graph(context.Background(), "black pepper")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = newOfflineService(t, live).Graph(context.Background(), "neem")
	require.NoError(t, err)
	assert.Equal(t, repositories.EmptySubgraph(), got)
}

func TestCompound(t *testing.T) {
	svc := newOfflineService(t, nil)

	p, err := svc.Compound(context.Background(), "curcumin")
	require.NoError(t, err)
	assert.Equal(t, "C21H20O6", p.Details.Compound.Formula())
	assert.Equal(t, compound.SourceFallback, p.Details.Compound.Source)

	_, err = svc.Compound(context.Background(), "withaferin A")
	assert.True(t, errors.IsCode(err, errors.CodeRemoteLookupDisabled))

	_, err = NewService(herb.NewCatalog(), nil, nil, nil).Compound(context.Background(), "curcumin")
	assert.True(t, errors.IsCode(err, errors.CodeRemoteLookupDisabled))
}

func TestSearchCompounds(t *testing.T) {
	_, err := newOfflineService(t, nil).SearchCompounds(context.Background(), "MolecularFormula", "C21H20O6")
	assert.True(t, errors.IsCode(err, errors.CodeRemoteLookupDisabled))

	_, err = newOfflineService(t, nil).SearchCompounds(context.Background(), "MolecularFormula", "")
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	_, err = NewService(herb.NewCatalog(), nil, nil, nil).SearchCompounds(context.Background(), "MolecularFormula", "C21H20O6")
	assert.True(t, errors.IsCode(err, errors.CodeRemoteLookupDisabled))
}

//Personal.AI order the ending
