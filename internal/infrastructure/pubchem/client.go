// Package pubchem is a small client for the PubChem PUG REST API.  Only the
// name-based property, synonym and CID search endpoints are used.
package pubchem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

const (
	// DefaultBaseURL is the public PUG REST root.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second

	// MaxSynonyms caps the Synonyms result.
	MaxSynonyms = 10

	// MaxSearchCIDs caps SearchCIDs.
	MaxSearchCIDs = 20

	basicProperties    = "MolecularFormula,MolecularWeight,IUPACName,CanonicalSMILES"
	detailedProperties = basicProperties + ",IsomericSMILES,InChI,InChIKey,ExactMass,TPSA,HeavyAtomCount,Charge,Complexity"
	bioProperties      = "MolecularWeight,XLogP"

	maxBodyBytes = 4 << 20
)

// Outcome labels passed to an Observer.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Config configures a Client.
type Config struct {
	BaseURL   string        `json:"base_url"`
	Timeout   time.Duration `json:"timeout"`
	UserAgent string        `json:"user_agent"`
}

// Observer receives one call per outbound request.  The prometheus package
// supplies the production implementation.
type Observer interface {
	ObservePubChemRequest(operation, outcome string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObservePubChemRequest(string, string, time.Duration) {}

// Client talks to PubChem over HTTP.  It is safe for concurrent use and does
// no rate limiting of its own.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     logging.Logger
	observer   Observer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithObserver installs a request observer.
func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config, logger logging.Logger, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "pubchem: invalid base_url")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("pubchem"),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Wire types
// ─────────────────────────────────────────────────────────────────────────────

// flexFloat accepts a JSON number or a JSON string holding a number.
// PubChem has returned MolecularWeight in both forms.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("pubchem: not a number: %s", b)
	}
	f.value = &v
	return nil
}

type propertyRow struct {
	CID              int64     `json:"CID"`
	MolecularFormula string    `json:"MolecularFormula"`
	MolecularWeight  flexFloat `json:"MolecularWeight"`
	IUPACName        string    `json:"IUPACName"`
	CanonicalSMILES  string    `json:"CanonicalSMILES"`
	ConnectivitySMI  string    `json:"ConnectivitySMILES"`
	IsomericSMILES   string    `json:"IsomericSMILES"`
	InChI            string    `json:"InChI"`
	InChIKey         string    `json:"InChIKey"`
	ExactMass        flexFloat `json:"ExactMass"`
	TPSA             flexFloat `json:"TPSA"`
	HeavyAtomCount   *int      `json:"HeavyAtomCount"`
	Charge           *int      `json:"Charge"`
	Complexity       flexFloat `json:"Complexity"`
	XLogP            flexFloat `json:"XLogP"`
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []propertyRow `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymResponse struct {
	InformationList struct {
		Information []struct {
			CID     int64    `json:"CID"`
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

type cidResponse struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

func (r propertyRow) toCompound(name string) compound.Compound {
	c := compound.Compound{
		Name:            name,
		MolecularWeight: r.MolecularWeight.value,
		IUPACName:       r.IUPACName,
		CanonicalSMILES: r.CanonicalSMILES,
		Source:          compound.SourcePubChem,
	}
	if c.CanonicalSMILES == "" {
		c.CanonicalSMILES = r.ConnectivitySMI
	}
	if r.CID != 0 {
		c.PubChemID = compound.Int64(r.CID)
	}
	if r.MolecularFormula != "" {
		c.MolecularFormula = compound.String(r.MolecularFormula)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Operations
// ─────────────────────────────────────────────────────────────────────────────

// GetCompoundByName fetches formula, weight, IUPAC name and SMILES for name.
func (c *Client) GetCompoundByName(ctx context.Context, name string) (compound.Compound, error) {
	row, err := c.firstRow(ctx, "properties", name, basicProperties)
	if err != nil {
		return compound.Compound{}, err
	}
	return row.toCompound(name), nil
}

// GetCompoundDetails fetches the extended descriptor set for name.
func (c *Client) GetCompoundDetails(ctx context.Context, name string) (compound.Details, error) {
	row, err := c.firstRow(ctx, "details", name, detailedProperties)
	if err != nil {
		return compound.Details{}, err
	}
	return compound.Details{
		Compound:       row.toCompound(name),
		IsomericSMILES: row.IsomericSMILES,
		InChI:          row.InChI,
		InChIKey:       row.InChIKey,
		ExactMass:      row.ExactMass.value,
		TPSA:           row.TPSA.value,
		HeavyAtomCount: row.HeavyAtomCount,
		FormalCharge:   row.Charge,
		Complexity:     row.Complexity.value,
	}, nil
}

// GetBioactivity fetches molecular weight and XLogP for name.
func (c *Client) GetBioactivity(ctx context.Context, name string) (compound.Bioactivity, error) {
	row, err := c.firstRow(ctx, "bioactivity", name, bioProperties)
	if err != nil {
		return compound.Bioactivity{Name: name}, err
	}
	return compound.Bioactivity{
		Name:            name,
		MolecularWeight: row.MolecularWeight.value,
		XLogP:           row.XLogP.value,
		Available:       true,
	}, nil
}

// GetSynonyms returns at most MaxSynonyms synonyms for name.
func (c *Client) GetSynonyms(ctx context.Context, name string) ([]string, error) {
	var resp synonymResponse
	path := "/compound/name/" + url.PathEscape(name) + "/synonyms/json"
	if err := c.getJSON(ctx, "synonyms", path, &resp); err != nil {
		return nil, err
	}
	info := resp.InformationList.Information
	if len(info) == 0 {
		return []string{}, nil
	}
	syn := info[0].Synonym
	if len(syn) > MaxSynonyms {
		syn = syn[:MaxSynonyms]
	}
	out := make([]string, len(syn))
	copy(out, syn)
	return out, nil
}

// SearchCIDs returns at most MaxSearchCIDs identifiers whose property equals
// value.
func (c *Client) SearchCIDs(ctx context.Context, property, value string) ([]int64, error) {
	if property == "" || value == "" {
		return nil, errors.InvalidParam("pubchem: property and value are required")
	}
	var resp cidResponse
	path := "/compound/property/" + url.PathEscape(property) + "/" + url.PathEscape(value) + "/cids/json"
	if err := c.getJSON(ctx, "search", path, &resp); err != nil {
		return nil, err
	}
	cids := resp.IdentifierList.CID
	if len(cids) > MaxSearchCIDs {
		cids = cids[:MaxSearchCIDs]
	}
	out := make([]int64, len(cids))
	copy(out, cids)
	return out, nil
}

func (c *Client) firstRow(ctx context.Context, op, name, properties string) (propertyRow, error) {
	if strings.TrimSpace(name) == "" {
		return propertyRow{}, errors.InvalidParam("pubchem: compound name is required")
	}
	var resp propertyResponse
	path := "/compound/name/" + url.PathEscape(name) + "/property/" + properties + "/json"
	if err := c.getJSON(ctx, op, path, &resp); err != nil {
		return propertyRow{}, err
	}
	rows := resp.PropertyTable.Properties
	if len(rows) == 0 {
		return propertyRow{}, errors.New(errors.CodePubChemResponseInvalid, "pubchem: empty property table").WithDetail(name)
	}
	return rows[0], nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out interface{}) error {
	start := time.Now()
	outcome := OutcomeError
	defer func() { c.observer.ObservePubChemRequest(op, outcome, time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "pubchem: build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("pubchem request failed", logging.String("op", op), logging.Err(err))
		return errors.Wrap(err, errors.CodePubChemUnavailable, "pubchem: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(err, errors.CodePubChemUnavailable, "pubchem: read body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome = OutcomeNotFound
		return errors.New(errors.CodeCompoundNotFound, "pubchem: compound not found").WithDetail(path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.Newf(errors.CodePubChemUnavailable, "pubchem: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, errors.CodePubChemResponseInvalid, "pubchem: decode response")
	}
	outcome = OutcomeSuccess
	return nil
}

//Personal.AI order the ending
