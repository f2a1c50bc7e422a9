package cli

import (
	"encoding/json"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/config"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/pubchem"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// localServices is the in-process pipeline used by --local.  It has no
// cache, graph store or publisher.
type localServices struct {
	analysis analysis.Service
	catalog  catalog.Service
}

func newLocalServices(cfg *config.Config, logger logging.Logger) (*localServices, error) {
	kb := herb.NewCatalog()
	spacer := compound_resolver.NewSpacer(cfg.PubChem.MinInterval)

	var pc compound_resolver.PubChemClient
	if !cfg.PubChem.Offline {
		c, err := pubchem.NewClient(pubchem.Config{
			BaseURL:   cfg.PubChem.BaseURL,
			Timeout:   cfg.PubChem.Timeout,
			UserAgent: cfg.PubChem.UserAgent,
		}, logger)
		if err != nil {
			return nil, err
		}
		pc = c
	}
	resolver, err := compound_resolver.NewResolver(pc, kb, compound_resolver.Config{
		Offline:     cfg.PubChem.Offline,
		Timeout:     cfg.PubChem.Timeout,
		Concurrency: cfg.Analysis.Concurrency,
	}, compound_resolver.WithSpacer(spacer), compound_resolver.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	demo, err := compound_resolver.NewResolver(nil, kb, compound_resolver.Config{Offline: true})
	if err != nil {
		return nil, err
	}

	asvc, err := analysis.NewService(analysis.Deps{
		KnowledgeBase: kb,
		Extractor:     herb_extractor.NewExtractor(kb, herb_extractor.WithLogger(logger)),
		Resolver:      resolver,
		DemoResolver:  demo,
		Generator:     hypothesis.NewGenerator(),
		Logger:        logger,
		TagSource:     cfg.Analysis.TagSource,
	})
	if err != nil {
		return nil, err
	}
	return &localServices{
		analysis: asvc,
		catalog:  catalog.NewService(kb, nil, resolver, logger),
	}, nil
}

// toWire re-decodes an in-process result into its SDK shape so local and
// remote output share one renderer.
func toWire(src, dst interface{}) error {
	b, err := json.Marshal(src)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "encode local result")
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "decode local result")
	}
	return nil
}

//Personal.AI order the ending
