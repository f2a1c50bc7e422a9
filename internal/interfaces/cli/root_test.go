package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	apihttp "github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func offlineServer(t *testing.T) string {
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
	srv := httptest.NewServer(apihttp.NewRouter(apihttp.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(asvc, nil, 0),
		HerbHandler:     handlers.NewHerbHandler(catalog.NewService(kb, nil, resolver, nil), nil),
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes the root command with args and returns stdout and the error.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AYURCHEM_PUBCHEM_OFFLINE", "true")
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// ─────────────────────────────────────────────────────────────────────────────
// Root
// ─────────────────────────────────────────────────────────────────────────────

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "ayurchem", cmd.Use)

	subs := map[string]bool{}
	for _, c := range cmd.Commands() {
		subs[c.Name()] = true
	}
	for _, name := range []string{"analyze", "herbs", "demo", "events", "version"} {
		assert.True(t, subs[name], name)
	}
	for _, flag := range []string{"config", "server", "output", "no-color", "timeout", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "", "-o", "yaml", "herbs", "list", "--local")
	require.Error(t, err)
	assert.Contains(t, errorMessage(err), "unknown output format")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "herbs", "list", "--local")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	old := Version
	Version = "1.4.0"
	defer func() { Version = old }()

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ayurchem 1.4.0")
	assert.Contains(t, out, "go:")
}

// ─────────────────────────────────────────────────────────────────────────────
// analyze / demo
// ─────────────────────────────────────────────────────────────────────────────

func TestAnalyze_RemoteJSON(t *testing.T) {
	out, err := run(t, "", "--server", offlineServer(t), "-o", "json", "analyze", "Neem is bitter")
	require.NoError(t, err)

	var res client.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"Neem"}, res.Herbs)
	assert.NotEmpty(t, res.ID)
}

func TestAnalyze_LocalTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Turmeric with black pepper, heating."), 0o600))

	out, err := run(t, "", "analyze", "--local", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Turmeric")
	assert.Contains(t, out, "Black Pepper")
	assert.Contains(t, out, "curcumin")
}

func TestAnalyze_Stdin(t *testing.T) {
	out, err := run(t, "Tulsi leaf tea", "-o", "text", "analyze", "--local", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "herbs: Tulsi")
}

func TestAnalyze_NoText(t *testing.T) {
	_, err := run(t, "", "analyze", "--local", "   ")
	require.Error(t, err)
	assert.Equal(t, "No text provided", errorMessage(err))
}

func TestDemo_LocalMatchesRemote(t *testing.T) {
	remote, err := run(t, "", "--server", offlineServer(t), "-o", "json", "demo")
	require.NoError(t, err)
	local, err := run(t, "", "-o", "json", "demo", "--local")
	require.NoError(t, err)
	assert.JSONEq(t, remote, local)
}

// ─────────────────────────────────────────────────────────────────────────────
// herbs
// ─────────────────────────────────────────────────────────────────────────────

func TestHerbs_ListText(t *testing.T) {
	out, err := run(t, "", "--server", offlineServer(t), "-o", "text", "herbs", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, herb.NewCatalog().Names(), lines)
}

func TestHerbs_GraphFlagReadsEmptyStore(t *testing.T) {
	srv := offlineServer(t)

	out, err := run(t, "", "--server", srv, "-o", "json", "herbs", "list", "--graph")
	require.NoError(t, err)
	assert.JSONEq(t, `{"herbs":[]}`, out)

	out, err = run(t, "", "--server", srv, "-o", "json", "herbs", "search", "--graph", "rasa", "tikta")
	require.NoError(t, err)
	assert.JSONEq(t, `{"herbs":[]}`, out)

	out, err = run(t, "", "--server", srv, "-o", "json", "herbs", "search", "rasa", "tikta")
	require.NoError(t, err)
	assert.Contains(t, out, "Neem")
}

func TestHerbs_ShowLocalAndRemote(t *testing.T) {
	for _, args := range [][]string{
		{"--server", offlineServer(t), "-o", "text", "herbs", "show", "black", "pepper"},
		{"-o", "text", "herbs", "show", "--local", "black", "pepper"},
	} {
		out, err := run(t, "", args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "Name:")
		assert.Contains(t, out, "Black Pepper")
		assert.Contains(t, out, "piperine")
	}
}

func TestHerbs_ShowUnknown(t *testing.T) {
	_, err := run(t, "", "--server", offlineServer(t), "herbs", "show", "Mandrake")
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "herb not found: Mandrake (HTTP 404)", errorMessage(err))
}

func TestHerbs_SearchDoshaSynergy(t *testing.T) {
	out, err := run(t, "", "-o", "json", "herbs", "--local", "search", "modern_compounds", "curcumin")
	require.NoError(t, err)
	assert.JSONEq(t, `{"herbs":["Turmeric"]}`, out)

	out, err = run(t, "", "-o", "text", "herbs", "--local", "dosha", "kapha")
	require.NoError(t, err)
	assert.Contains(t, out, "Turmeric")

	out, err = run(t, "", "-o", "json", "herbs", "--local", "synergy", "Turmeric", "--limit", "2")
	require.NoError(t, err)
	var res map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.LessOrEqual(t, len(res["herbs"]), 2)

	_, err = run(t, "", "herbs", "--local", "synergy", "Turmeric", "--limit", "0")
	require.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// events
// ─────────────────────────────────────────────────────────────────────────────

type fakeEvents struct {
	envs   []*kafka.EventEnvelope
	cfg    kafka.ConsumerConfig
	closed bool
}

func (f *fakeEvents) Consume(ctx context.Context, handle kafka.EventHandler) error {
	for _, env := range f.envs {
		if ctx.Err() != nil {
			return nil
		}
		if err := handle(ctx, env); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeEvents) Close() error { f.closed = true; return nil }

func TestEventsTail(t *testing.T) {
	mk := func(id string) *kafka.EventEnvelope {
		env, err := kafka.NewEventEnvelope(kafka.EventTypeAnalysisCompleted, "test", kafka.AnalysisCompletedPayload{
			AnalysisID:    id,
			Herbs:         []string{"Turmeric"},
			CompoundCount: 3,
			DegradedCount: 2,
			CompletedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		return env
	}
	other, err := kafka.NewEventEnvelope("something.else", "test", map[string]string{})
	require.NoError(t, err)

	fake := &fakeEvents{envs: []*kafka.EventEnvelope{mk("a-1"), other, mk("a-2"), mk("a-3")}}
	orig := newEventSource
	newEventSource = func(cfg kafka.ConsumerConfig, _ *CLIContext) (eventSource, error) {
		fake.cfg = cfg
		return fake, nil
	}
	defer func() { newEventSource = orig }()

	out, err := run(t, "", "-o", "text", "events", "tail", "--max", "2", "--topic", "custom", "--from-start")
	require.NoError(t, err)

	assert.Contains(t, out, "a-1 herbs=[Turmeric] compounds=3 degraded=2")
	assert.Contains(t, out, "a-2")
	assert.NotContains(t, out, "a-3")
	assert.Equal(t, "custom", fake.cfg.Topic)
	assert.True(t, fake.cfg.FromStart)
	assert.Equal(t, []string{"localhost:9092"}, fake.cfg.Brokers)
	assert.True(t, fake.closed)
}

//Personal.AI order the ending
