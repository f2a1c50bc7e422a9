package repositories

import (
	"context"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
)

// GraphNode is one node of a herb neighbourhood.  ID is the herb or
// property name, or the PubChem CID for compounds.
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphRelationship links a herb to one of its property or compound nodes.
type GraphRelationship struct {
	Type   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Subgraph is the neighbourhood of a single herb.
type Subgraph struct {
	Nodes         []GraphNode         `json:"nodes"`
	Relationships []GraphRelationship `json:"relationships"`
}

// EmptySubgraph serialises as {"nodes":[],"relationships":[]}.
func EmptySubgraph() Subgraph {
	return Subgraph{Nodes: []GraphNode{}, Relationships: []GraphRelationship{}}
}

// HerbUpsert is what an analysis writes back for one herb.
type HerbUpsert struct {
	Name      string
	Rasa      []string
	Guna      []string
	Virya     []string
	Dosha     string
	Compounds []compound.Compound
}

// GraphStore persists analysed herbs and answers neighbourhood queries.
type GraphStore interface {
	EnsureSchema(ctx context.Context) error
	UpsertHerb(ctx context.Context, h HerbUpsert) error
	HerbGraph(ctx context.Context, name string) (Subgraph, error)
	SearchByProperty(ctx context.Context, kind herb.PropertyKind, value string) ([]string, error)
	ListHerbs(ctx context.Context) ([]string, error)
	// Live is false for the no-op store.
	Live() bool
	HealthCheck(ctx context.Context) error
	Close() error
}

// ─────────────────────────────────────────────────────────────────────────────
// NopGraphStore
// ─────────────────────────────────────────────────────────────────────────────

// NopGraphStore is used when no graph database is configured or reachable.
type NopGraphStore struct{}

func NewNopGraphStore() NopGraphStore { return NopGraphStore{} }

func (NopGraphStore) EnsureSchema(context.Context) error           { return nil }
func (NopGraphStore) UpsertHerb(context.Context, HerbUpsert) error { return nil }
func (NopGraphStore) HerbGraph(context.Context, string) (Subgraph, error) {
	return EmptySubgraph(), nil
}
func (NopGraphStore) SearchByProperty(context.Context, herb.PropertyKind, string) ([]string, error) {
	return []string{}, nil
}
func (NopGraphStore) ListHerbs(context.Context) ([]string, error) { return []string{}, nil }
func (NopGraphStore) Live() bool                                  { return false }
func (NopGraphStore) HealthCheck(context.Context) error           { return nil }
func (NopGraphStore) Close() error                                { return nil }

//Personal.AI order the ending
