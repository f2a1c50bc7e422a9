// Package compound_resolver turns herb names into chemical records.  Names
// come from the knowledge base; data comes from PubChem, a cache, or the
// curated fallback table, in that order of preference.  A lookup never
// fails: the worst case is a record carrying only the name and an error.
package compound_resolver

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// DefaultTimeout bounds a single remote call.
const DefaultTimeout = 10 * time.Second

// RemoteDisabledMessage is the error text of records produced in offline mode.
const RemoteDisabledMessage = "remote lookup disabled"

// CompoundSearchParamsMessage is returned when either search parameter is
// missing.
const CompoundSearchParamsMessage = "property and value required"

// ─────────────────────────────────────────────────────────────────────────────
// Collaborators
// ─────────────────────────────────────────────────────────────────────────────

// PubChemClient is the remote lookup contract.
type PubChemClient interface {
	GetCompoundByName(ctx context.Context, name string) (compound.Compound, error)
	GetCompoundDetails(ctx context.Context, name string) (compound.Details, error)
	GetSynonyms(ctx context.Context, name string) ([]string, error)
	GetBioactivity(ctx context.Context, name string) (compound.Bioactivity, error)
	SearchCIDs(ctx context.Context, property, value string) ([]int64, error)
}

// CompoundSource maps a herb to the compound names expected in it.
type CompoundSource interface {
	CompoundNames(herb string) []string
}

// Cache stores successful remote lookups keyed by lowercase compound name.
type Cache interface {
	Get(ctx context.Context, name string) (compound.Compound, bool, error)
	Set(ctx context.Context, name string, c compound.Compound) error
}

// Observer receives resolver events for metrics.
type Observer interface {
	ObserveCacheLookup(hit bool)
	ObserveFallback(herb, name string)
}

type nopObserver struct{}

func (nopObserver) ObserveCacheLookup(bool)        {}
func (nopObserver) ObserveFallback(string, string) {}

// Config tunes a Resolver.
type Config struct {
	// Offline skips every remote call.
	Offline bool
	// Timeout bounds each remote call.  Defaults to DefaultTimeout.
	Timeout time.Duration
	// MinInterval is used when no Spacer is supplied.  Values below
	// DefaultMinInterval are raised to it.
	MinInterval time.Duration
	// Concurrency bounds ResolveAll.  Defaults to 4.
	Concurrency int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache installs a cache.  A nil cache disables caching.
func WithCache(c Cache) Option { return func(r *Resolver) { r.cache = c } }

// WithSpacer shares an existing Spacer.  Resolvers in one process should
// share one.
func WithSpacer(s *Spacer) Option {
	return func(r *Resolver) {
		if s != nil {
			r.spacer = s
		}
	}
}

// WithObserver installs a metrics observer.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolver
// ─────────────────────────────────────────────────────────────────────────────

// Resolver is safe for concurrent use.
type Resolver struct {
	client   PubChemClient
	source   CompoundSource
	cache    Cache
	spacer   *Spacer
	observer Observer
	logger   logging.Logger
	cfg      Config
	flight   singleflight.Group
}

// NewResolver builds a Resolver.  client may be nil only in offline mode.
func NewResolver(client PubChemClient, source CompoundSource, cfg Config, opts ...Option) (*Resolver, error) {
	if source == nil {
		return nil, errors.InvalidParam("compound resolver: compound source is required")
	}
	if client == nil && !cfg.Offline {
		return nil, errors.InvalidParam("compound resolver: pubchem client is required unless offline")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MinInterval < DefaultMinInterval {
		cfg.MinInterval = DefaultMinInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	r := &Resolver{
		client:   client,
		source:   source,
		observer: nopObserver{},
		logger:   logging.NewNopLogger(),
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.spacer == nil {
		r.spacer = NewSpacer(cfg.MinInterval)
	}
	r.logger = r.logger.Named("compound_resolver")
	return r, nil
}

// Offline reports whether remote calls are disabled.
func (r *Resolver) Offline() bool { return r.cfg.Offline }

// ExpectedNames returns the compound names ResolveHerb will look up for herb:
// the mapped names, or the herb itself when it has none.
func (r *Resolver) ExpectedNames(herbName string) []string {
	names := r.source.CompoundNames(herbName)
	if len(names) == 0 {
		return []string{herbName}
	}
	return names
}

// ResolveHerb returns one record per expected compound name, in mapping
// order.  It never returns an error.
func (r *Resolver) ResolveHerb(ctx context.Context, herbName string) []compound.Compound {
	names := r.ExpectedNames(herbName)
	out := make([]compound.Compound, 0, len(names))
	for _, name := range names {
		out = append(out, r.resolveOne(ctx, herbName, name))
	}
	return out
}

// ResolveAll resolves several herbs concurrently.  Outbound calls still pass
// through the shared Spacer one at a time.
func (r *Resolver) ResolveAll(ctx context.Context, herbs []string) map[string][]compound.Compound {
	results := make([][]compound.Compound, len(herbs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, h := range herbs {
		i, h := i, h
		g.Go(func() error {
			results[i] = r.ResolveHerb(gctx, h)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string][]compound.Compound, len(herbs))
	for i, h := range herbs {
		out[h] = results[i]
	}
	return out
}

func (r *Resolver) resolveOne(ctx context.Context, herbName, name string) compound.Compound {
	if r.cfg.Offline {
		return r.degrade(herbName, name, RemoteDisabledMessage)
	}

	key := strings.ToLower(strings.TrimSpace(name))
	// The shared fetch outlives any single caller; each caller only stops
	// waiting on its own cancellation.
	flightCtx := context.WithoutCancel(ctx)
	ch := r.flight.DoChan(key, func() (interface{}, error) {
		return r.fetch(flightCtx, key, name)
	})

	var (
		v   interface{}
		err error
	)
	select {
	case res := <-ch:
		v, err = res.Val, res.Err
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		fields := []logging.Field{logging.String("herb", herbName), logging.String("compound", name), logging.Err(err)}
		if errors.IsCode(err, errors.CodeCompoundNotFound) {
			r.logger.Debug("compound unknown to pubchem", fields...)
		} else {
			r.logger.Warn("compound lookup degraded", fields...)
		}
		return r.degrade(herbName, name, errorText(err))
	}
	c := v.(compound.Compound)
	c.Name = name
	return c
}

// fetch runs inside singleflight: cache, then spacer, then the remote call.
func (r *Resolver) fetch(ctx context.Context, key, name string) (compound.Compound, error) {
	if r.cache != nil {
		c, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Debug("compound cache read failed", logging.String("compound", key), logging.Err(err))
		}
		r.observer.ObserveCacheLookup(ok)
		if ok {
			return c.WithSource(compound.SourceCache), nil
		}
	}

	if err := r.spacer.Wait(ctx); err != nil {
		return compound.Compound{}, errors.Wrap(err, errors.CodePubChemUnavailable, "pubchem: rate limiter wait aborted")
	}

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	c, err := r.client.GetCompoundByName(callCtx, name)
	if err != nil {
		return compound.Compound{}, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, c); err != nil {
			r.logger.Debug("compound cache write failed", logging.String("compound", key), logging.Err(err))
		}
	}
	return c, nil
}

func (r *Resolver) degrade(herbName, name, reason string) compound.Compound {
	if c, ok := Fallback(herbName, name); ok {
		r.observer.ObserveFallback(herbName, name)
		c.Name = name
		return c
	}
	return compound.NewErrorRecord(name, reason)
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-compound lookups
// ─────────────────────────────────────────────────────────────────────────────

// Profile gathers everything known about one compound.
type Profile struct {
	Details     compound.Details     `json:"details"`
	Synonyms    []string             `json:"synonyms"`
	Bioactivity compound.Bioactivity `json:"bioactivity"`
}

// Synonyms returns up to ten synonyms, or an empty list on any failure.
func (r *Resolver) Synonyms(ctx context.Context, name string) []string {
	if r.cfg.Offline {
		return []string{}
	}
	var out []string
	err := r.remote(ctx, func(c context.Context) (err error) {
		out, err = r.client.GetSynonyms(c, name)
		return err
	})
	if err != nil || out == nil {
		return []string{}
	}
	return out
}

// Bioactivity returns the weight and XLogP proxy.  Available is false on any
// failure.
func (r *Resolver) Bioactivity(ctx context.Context, name string) compound.Bioactivity {
	if r.cfg.Offline {
		return compound.Bioactivity{Name: name}
	}
	var out compound.Bioactivity
	if err := r.remote(ctx, func(c context.Context) (err error) {
		out, err = r.client.GetBioactivity(c, name)
		return err
	}); err != nil {
		return compound.Bioactivity{Name: name}
	}
	return out
}

// Describe returns the full profile of name.  Unlike ResolveHerb it reports
// failure: a compound PubChem does not know yields CodeCompoundNotFound, and
// offline mode without a curated record yields CodeRemoteLookupDisabled.
func (r *Resolver) Describe(ctx context.Context, name string) (*Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidParam("compound name is required")
	}
	if r.cfg.Offline {
		c, ok := Fallback("", name)
		if !ok {
			return nil, errors.New(errors.CodeRemoteLookupDisabled, RemoteDisabledMessage).WithDetail(name)
		}
		return &Profile{Details: compound.Details{Compound: c}, Synonyms: []string{}, Bioactivity: compound.Bioactivity{Name: name}}, nil
	}

	var details compound.Details
	if err := r.remote(ctx, func(c context.Context) (err error) {
		details, err = r.client.GetCompoundDetails(c, name)
		return err
	}); err != nil {
		if c, ok := Fallback("", name); ok && !errors.IsNotFound(err) {
			details = compound.Details{Compound: c}
		} else {
			return nil, err
		}
	}
	return &Profile{
		Details:     details,
		Synonyms:    r.Synonyms(ctx, name),
		Bioactivity: r.Bioactivity(ctx, name),
	}, nil
}

// SearchCompounds returns the PubChem identifiers whose property equals
// value, e.g. SearchCompounds(ctx, "MolecularFormula", "C21H20O6").  A failed
// remote call yields an empty list; offline mode yields
// CodeRemoteLookupDisabled.
func (r *Resolver) SearchCompounds(ctx context.Context, property, value string) ([]int64, error) {
	property, value = strings.TrimSpace(property), strings.TrimSpace(value)
	if property == "" || value == "" {
		return nil, errors.InvalidParam(CompoundSearchParamsMessage)
	}
	if r.cfg.Offline {
		return nil, errors.New(errors.CodeRemoteLookupDisabled, RemoteDisabledMessage)
	}
	var cids []int64
	if err := r.remote(ctx, func(c context.Context) (err error) {
		cids, err = r.client.SearchCIDs(c, property, value)
		return err
	}); err != nil {
		r.logger.Warn("compound search degraded",
			logging.String("property", property), logging.String("value", value), logging.Err(err))
		return []int64{}, nil
	}
	if cids == nil {
		cids = []int64{}
	}
	return cids, nil
}

func (r *Resolver) remote(ctx context.Context, call func(context.Context) error) error {
	if err := r.spacer.Wait(ctx); err != nil {
		return errors.Wrap(err, errors.CodePubChemUnavailable, "pubchem: rate limiter wait aborted")
	}
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	return call(callCtx)
}

// errorText renders err for the Error field of a degraded record.
func errorText(err error) string {
	var ae *errors.AppError
	if errors.As(err, &ae) {
		if ae.Cause != nil {
			return ae.Message + ": " + ae.Cause.Error()
		}
		return ae.Message
	}
	return err.Error()
}

//Personal.AI order the ending
