package repositories

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	pkgerrors "github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

type HerbGraphRepoTestSuite struct {
	suite.Suite
	exec *MockExecutor
	repo *HerbGraphRepo
	ctx  context.Context
}

func (s *HerbGraphRepoTestSuite) SetupTest() {
	s.exec = newMockExecutor()
	s.repo = NewHerbGraphRepo(s.exec, nil)
	s.ctx = context.Background()
}

func (s *HerbGraphRepoTestSuite) TestEnsureSchema() {
	for _, stmt := range schemaStatements {
		s.exec.tx.On("Run", mock.Anything, stmt, map[string]any(nil)).Return(&MockResult{}, nil).Once()
	}
	s.Require().NoError(s.repo.EnsureSchema(s.ctx))
	s.exec.tx.AssertNumberOfCalls(s.T(), "Run", 2)
}

func (s *HerbGraphRepoTestSuite) TestUpsertHerb() {
	var cyphers []string
	var compoundParams []map[string]any
	s.exec.tx.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			cypher := args.String(1)
			cyphers = append(cyphers, cypher)
			if strings.Contains(cypher, "CONTAINS_COMPOUND") {
				params := args.Get(2).(map[string]any)
				compoundParams = params["compounds"].([]map[string]any)
			}
		}).
		Return(&MockResult{}, nil)

	err := s.repo.UpsertHerb(s.ctx, HerbUpsert{
		Name:  "black pepper",
		Guna:  []string{"ushna"},
		Virya: []string{"ushna"},
		Dosha: "pacifies kapha and vata",
		Compounds: []compound.Compound{
			{Name: "piperine", PubChemID: compound.Int64(638024), MolecularFormula: compound.String("C17H19NO3")},
			compound.NewErrorRecord("chavicine", "timeout"),
		},
	})
	s.Require().NoError(err)

	s.Require().Len(cyphers, 4)
	s.Equal(upsertHerbCypher, cyphers[0])
	s.Contains(cyphers[1], "MERGE (p:Guna {name: value})")
	s.Contains(cyphers[1], "[:HAS_GUNA]")
	s.Contains(cyphers[2], "[:HAS_VIRYA]")
	s.Equal(upsertCompoundCypher, cyphers[3])

	s.Require().Len(compoundParams, 1)
	s.Equal(int64(638024), compoundParams[0]["cid"])
	s.Equal("C17H19NO3", compoundParams[0]["formula"])

	s.exec.tx.AssertCalled(s.T(), "Run", mock.Anything, upsertHerbCypher,
		map[string]any{"name": "Black Pepper", "dosha": "pacifies kapha and vata"})
}

func (s *HerbGraphRepoTestSuite) TestUpsertHerb_RequiresName() {
	err := s.repo.UpsertHerb(s.ctx, HerbUpsert{Name: "  "})
	s.True(pkgerrors.IsCode(err, pkgerrors.CodeInvalidParam))
}

func (s *HerbGraphRepoTestSuite) TestUpsertHerb_PropagatesRunError() {
	s.exec.tx.On("Run", mock.Anything, upsertHerbCypher, mock.Anything).Return(nil, stderrors.New("deadlock"))

	s.Error(s.repo.UpsertHerb(s.ctx, HerbUpsert{Name: "Neem"}))
}

func (s *HerbGraphRepoTestSuite) TestHerbGraph() {
	turmeric := herbNode("Turmeric")
	cmp := neo4j.Node{ElementId: "c:1", Labels: []string{"Compound"}, Props: map[string]any{"cid": int64(969516), "name": "curcumin"}}
	keys := []string{"h", "rel", "n"}
	s.exec.tx.On("Run", mock.Anything, herbGraphCypher, map[string]any{"name": "Turmeric"}).Return(&MockResult{Records: []*neo4j.Record{
		NewRecord(keys, []any{turmeric, "HAS_RASA", propNode("Rasa", "tikta")}),
		NewRecord(keys, []any{turmeric, "HAS_VIRYA", propNode("Virya", "ushna")}),
		NewRecord(keys, []any{turmeric, "CONTAINS_COMPOUND", cmp}),
	}}, nil)

	g, err := s.repo.HerbGraph(s.ctx, "turmeric")
	s.Require().NoError(err)

	s.Require().Len(g.Nodes, 4)
	s.Equal(GraphNode{ID: "Turmeric", Label: "Herb", Properties: turmeric.Props}, g.Nodes[0])
	s.Equal("969516", g.Nodes[3].ID)
	s.Equal([]GraphRelationship{
		{Type: "HAS_RASA", Source: "Turmeric", Target: "tikta"},
		{Type: "HAS_VIRYA", Source: "Turmeric", Target: "ushna"},
		{Type: "CONTAINS_COMPOUND", Source: "Turmeric", Target: "969516"},
	}, g.Relationships)
}

func (s *HerbGraphRepoTestSuite) TestHerbGraph_Unknown() {
	s.exec.tx.On("Run", mock.Anything, herbGraphCypher, mock.Anything).Return(&MockResult{}, nil)

	g, err := s.repo.HerbGraph(s.ctx, "Mandrake")
	s.Require().NoError(err)
	s.NotNil(g.Nodes)
	s.Empty(g.Nodes)
	s.NotNil(g.Relationships)
}

func (s *HerbGraphRepoTestSuite) TestSearchByProperty() {
	expected := "MATCH (h:Herb)-[:HAS_RASA]->(p:Rasa {name: $value}) RETURN h.name AS name ORDER BY name"
	s.exec.tx.On("Run", mock.Anything, expected, map[string]any{"value": "tikta"}).Return(&MockResult{Records: []*neo4j.Record{
		NewRecord([]string{"name"}, []any{"Neem"}),
		NewRecord([]string{"name"}, []any{"Turmeric"}),
	}}, nil)

	names, err := s.repo.SearchByProperty(s.ctx, herb.KindRasa, " Tikta ")
	s.Require().NoError(err)
	s.Equal([]string{"Neem", "Turmeric"}, names)
}

func (s *HerbGraphRepoTestSuite) TestSearchByProperty_RejectsOtherKinds() {
	_, err := s.repo.SearchByProperty(s.ctx, herb.KindTherapeuticActions, "antioxidant")
	s.True(pkgerrors.IsCode(err, pkgerrors.CodePropertyKindInvalid))
	s.exec.tx.AssertNotCalled(s.T(), "Run", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HerbGraphRepoTestSuite) TestListHerbs() {
	s.exec.tx.On("Run", mock.Anything, listHerbsCypher, map[string]any(nil)).Return(&MockResult{Records: []*neo4j.Record{
		NewRecord([]string{"name"}, []any{"Black Pepper"}),
	}}, nil)

	names, err := s.repo.ListHerbs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Black Pepper"}, names)
}

func (s *HerbGraphRepoTestSuite) TestLiveAndClose() {
	s.True(s.repo.Live())
	s.exec.On("Close").Return(nil)
	s.NoError(s.repo.Close())
}

func TestHerbGraphRepoTestSuite(t *testing.T) {
	suite.Run(t, new(HerbGraphRepoTestSuite))
}

// ─────────────────────────────────────────────────────────────────────────────
// NopGraphStore
// ─────────────────────────────────────────────────────────────────────────────

func (s *HerbGraphRepoTestSuite) TestNopGraphStore() {
	var store GraphStore = NewNopGraphStore()
	s.False(store.Live())
	s.NoError(store.EnsureSchema(s.ctx))
	s.NoError(store.UpsertHerb(s.ctx, HerbUpsert{Name: "Neem"}))

	g, err := store.HerbGraph(s.ctx, "Neem")
	s.NoError(err)
	s.Equal(EmptySubgraph(), g)

	names, err := store.ListHerbs(s.ctx)
	s.NoError(err)
	s.NotNil(names)
	s.Empty(names)

	found, err := store.SearchByProperty(s.ctx, herb.KindRasa, "tikta")
	s.NoError(err)
	s.Empty(found)
	s.NoError(store.HealthCheck(s.ctx))
	s.NoError(store.Close())
}

//Personal.AI order the ending
