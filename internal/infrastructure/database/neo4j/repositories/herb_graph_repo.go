package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	driver "github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

var schemaStatements = []string{
	"CREATE CONSTRAINT herb_name IF NOT EXISTS FOR (h:Herb) REQUIRE h.name IS UNIQUE",
	"CREATE CONSTRAINT compound_cid IF NOT EXISTS FOR (c:Compound) REQUIRE c.cid IS UNIQUE",
}

// propertyEdges whitelists the property kinds stored as nodes.  Labels and
// relationship types cannot be query parameters, so only these are ever
// interpolated into Cypher.
var propertyEdges = map[herb.PropertyKind]struct{ label, rel string }{
	herb.KindRasa:  {"Rasa", "HAS_RASA"},
	herb.KindGuna:  {"Guna", "HAS_GUNA"},
	herb.KindVirya: {"Virya", "HAS_VIRYA"},
}

const (
	upsertHerbCypher = `MERGE (h:Herb {name: $name}) SET h.dosha = $dosha`

	upsertPropertyCypher = `MATCH (h:Herb {name: $name})
UNWIND $values AS value
MERGE (p:%s {name: value})
MERGE (h)-[:%s]->(p)`

	upsertCompoundCypher = `MATCH (h:Herb {name: $name})
UNWIND $compounds AS cmp
MERGE (c:Compound {cid: cmp.cid})
SET c.name = cmp.name, c.formula = cmp.formula
MERGE (h)-[:CONTAINS_COMPOUND]->(c)`

	herbGraphCypher = `MATCH (h:Herb {name: $name})-[r]->(n) RETURN h, type(r) AS rel, n`

	searchCypher = `MATCH (h:Herb)-[:%s]->(p:%s {name: $value}) RETURN h.name AS name ORDER BY name`

	listHerbsCypher = `MATCH (h:Herb) RETURN h.name AS name ORDER BY name`
)

var (
	_ GraphStore = (*HerbGraphRepo)(nil)
	_ GraphStore = NopGraphStore{}
)

// HerbGraphRepo is the Neo4j-backed GraphStore.
type HerbGraphRepo struct {
	exec driver.Executor
	log  logging.Logger
}

func NewHerbGraphRepo(exec driver.Executor, log logging.Logger) *HerbGraphRepo {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HerbGraphRepo{exec: exec, log: log}
}

func (r *HerbGraphRepo) Live() bool { return true }

func (r *HerbGraphRepo) HealthCheck(ctx context.Context) error { return r.exec.HealthCheck(ctx) }

func (r *HerbGraphRepo) Close() error { return r.exec.Close() }

// EnsureSchema creates the uniqueness constraints.  It is idempotent.
func (r *HerbGraphRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.exec.ExecuteWrite(ctx, func(tx driver.Transaction) (any, error) {
		for _, stmt := range schemaStatements {
			if err := run(ctx, tx, stmt, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

// UpsertHerb merges the herb, its property nodes and every compound that
// carries a PubChem CID.  Degraded compounds are skipped.
func (r *HerbGraphRepo) UpsertHerb(ctx context.Context, h HerbUpsert) error {
	name := herb.NormalizeName(h.Name)
	if name == "" {
		return errors.InvalidParam("herb name is required")
	}

	compounds := make([]map[string]any, 0, len(h.Compounds))
	for _, c := range h.Compounds {
		if c.PubChemID == nil {
			continue
		}
		compounds = append(compounds, map[string]any{
			"cid":     *c.PubChemID,
			"name":    c.Name,
			"formula": c.Formula(),
		})
	}

	_, err := r.exec.ExecuteWrite(ctx, func(tx driver.Transaction) (any, error) {
		if err := run(ctx, tx, upsertHerbCypher, map[string]any{"name": name, "dosha": h.Dosha}); err != nil {
			return nil, err
		}
		for _, p := range []struct {
			kind   herb.PropertyKind
			values []string
		}{
			{herb.KindRasa, h.Rasa},
			{herb.KindGuna, h.Guna},
			{herb.KindVirya, h.Virya},
		} {
			if len(p.values) == 0 {
				continue
			}
			edge := propertyEdges[p.kind]
			cypher := fmt.Sprintf(upsertPropertyCypher, edge.label, edge.rel)
			if err := run(ctx, tx, cypher, map[string]any{"name": name, "values": toAny(p.values)}); err != nil {
				return nil, err
			}
		}
		if len(compounds) > 0 {
			if err := run(ctx, tx, upsertCompoundCypher, map[string]any{"name": name, "compounds": compounds}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}
	r.log.Debug("herb upserted", logging.String("herb", name), logging.Int("compounds", len(compounds)))
	return nil
}

// HerbGraph returns the herb node and its direct neighbours.  An unknown herb
// yields an empty subgraph.
func (r *HerbGraphRepo) HerbGraph(ctx context.Context, name string) (Subgraph, error) {
	name = herb.NormalizeName(name)
	out, err := r.exec.ExecuteRead(ctx, func(tx driver.Transaction) (any, error) {
		res, err := tx.Run(ctx, herbGraphCypher, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}

		g := EmptySubgraph()
		seen := make(map[string]bool)
		for res.Next(ctx) {
			rec := res.Record()
			h, err := nodeAt(rec, "h")
			if err != nil {
				return nil, err
			}
			n, err := nodeAt(rec, "n")
			if err != nil {
				return nil, err
			}
			rel, _ := rec.Get("rel")
			relType, _ := rel.(string)

			for _, node := range []GraphNode{h, n} {
				key := node.Label + "/" + node.ID
				if !seen[key] {
					seen[key] = true
					g.Nodes = append(g.Nodes, node)
				}
			}
			g.Relationships = append(g.Relationships, GraphRelationship{Type: relType, Source: h.ID, Target: n.ID})
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return g, nil
	})
	if err != nil {
		return EmptySubgraph(), err
	}
	return out.(Subgraph), nil
}

// SearchByProperty lists herbs linked to the given rasa, guna or virya node.
func (r *HerbGraphRepo) SearchByProperty(ctx context.Context, kind herb.PropertyKind, value string) ([]string, error) {
	edge, ok := propertyEdges[kind]
	if !ok {
		return nil, errors.New(errors.CodePropertyKindInvalid, "graph search supports rasa, guna and virya only").
			WithDetail(string(kind))
	}
	cypher := fmt.Sprintf(searchCypher, edge.rel, edge.label)
	return r.names(ctx, cypher, map[string]any{"value": strings.ToLower(strings.TrimSpace(value))})
}

func (r *HerbGraphRepo) ListHerbs(ctx context.Context) ([]string, error) {
	return r.names(ctx, listHerbsCypher, nil)
}

func (r *HerbGraphRepo) names(ctx context.Context, cypher string, params map[string]any) ([]string, error) {
	out, err := r.exec.ExecuteRead(ctx, func(tx driver.Transaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return driver.CollectRecords(ctx, res, func(rec *neo4j.Record) (string, error) {
			v, _ := rec.Get("name")
			s, _ := v.(string)
			return s, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func run(ctx context.Context, tx driver.Transaction, cypher string, params map[string]any) error {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}

func nodeAt(rec *neo4j.Record, key string) (GraphNode, error) {
	v, ok := rec.Get(key)
	if !ok {
		return GraphNode{}, fmt.Errorf("record has no %q column", key)
	}
	n, ok := v.(neo4j.Node)
	if !ok {
		return GraphNode{}, fmt.Errorf("column %q is %T, not a node", key, v)
	}
	label := ""
	if len(n.Labels) > 0 {
		label = n.Labels[0]
	}
	id := ""
	if name, ok := n.Props["name"]; ok && label != "Compound" {
		id = fmt.Sprint(name)
	} else if cid, ok := n.Props["cid"]; ok {
		id = fmt.Sprint(cid)
	} else {
		id = n.ElementId
	}
	return GraphNode{ID: id, Label: label, Properties: n.Props}, nil
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

//Personal.AI order the ending
