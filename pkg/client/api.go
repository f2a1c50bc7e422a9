package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type herbsReply struct {
	Herbs []string `json:"herbs"`
}

// Analyze posts text to /api/analyze.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalysisResult, error) {
	var out AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/api/analyze", nil, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Demo(ctx context.Context) (*AnalysisResult, error) {
	var out AnalysisResult
	if err := c.get(ctx, "/demo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListHerbs lists the herbs held by the server's graph store.  It is empty
// when the server runs without one.
func (c *Client) ListHerbs(ctx context.Context) ([]string, error) {
	return c.herbList(ctx, "/api/herbs", nil)
}

// CatalogHerbs lists the herbs of the built-in knowledge base.
func (c *Client) CatalogHerbs(ctx context.Context) ([]string, error) {
	return c.herbList(ctx, "/api/catalog/herbs", nil)
}

func (c *Client) Herb(ctx context.Context, name string) (*HerbDetail, error) {
	var out HerbDetail
	if err := c.get(ctx, "/api/herbs/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Synergistic lists herbs sharing a dosha with name.  limit <= 0 uses the
// server default.
func (c *Client) Synergistic(ctx context.Context, name string, limit int) ([]string, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return c.herbList(ctx, "/api/herbs/"+url.PathEscape(name)+"/synergistic", q)
}

// Search matches a property node of the graph store, e.g.
// Search(ctx, "rasa", "tikta").
func (c *Client) Search(ctx context.Context, propertyType, value string) ([]string, error) {
	return c.herbList(ctx, "/api/search", searchQuery(propertyType, value))
}

// SearchCatalog matches one field of the built-in knowledge base.
func (c *Client) SearchCatalog(ctx context.Context, propertyType, value string) ([]string, error) {
	return c.herbList(ctx, "/api/catalog/search", searchQuery(propertyType, value))
}

func searchQuery(propertyType, value string) url.Values {
	return url.Values{
		"property_type":  {propertyType},
		"property_value": {value},
	}
}

func (c *Client) ByDosha(ctx context.Context, dosha string) ([]string, error) {
	return c.herbList(ctx, "/api/dosha/"+url.PathEscape(dosha), nil)
}

func (c *Client) Graph(ctx context.Context, name string) (*Subgraph, error) {
	var out Subgraph
	if err := c.get(ctx, "/api/graph/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Compound(ctx context.Context, name string) (*CompoundProfile, error) {
	var out CompoundProfile
	if err := c.get(ctx, "/api/compounds/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCompounds lists PubChem identifiers whose property equals value,
// e.g. SearchCompounds(ctx, "MolecularFormula", "C21H20O6").
func (c *Client) SearchCompounds(ctx context.Context, property, value string) ([]int64, error) {
	var out struct {
		CIDs []int64 `json:"cids"`
	}
	q := url.Values{"property": {property}, "value": {value}}
	if err := c.get(ctx, "/api/compounds/search", q, &out); err != nil {
		return nil, err
	}
	if out.CIDs == nil {
		out.CIDs = []int64{}
	}
	return out.CIDs, nil
}

func (c *Client) herbList(ctx context.Context, path string, q url.Values) ([]string, error) {
	var out herbsReply
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	if out.Herbs == nil {
		out.Herbs = []string{}
	}
	return out.Herbs, nil
}

//Personal.AI order the ending
