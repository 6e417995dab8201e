package identicon

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
)

// --- Mocks ---

type mockCache struct {
	stored map[string][]figure.ParameterSet
	gets   int
	puts   int
}

func newMockCache() *mockCache {
	return &mockCache{stored: make(map[string][]figure.ParameterSet)}
}

func (m *mockCache) key(strategy, text string, count int) string {
	return strategy + "|" + text + "|" + string(rune('0'+count))
}

func (m *mockCache) Get(_ context.Context, strategy, text string, count int) ([]figure.ParameterSet, bool) {
	m.gets++
	ps, ok := m.stored[m.key(strategy, text, count)]
	return ps, ok
}

func (m *mockCache) Put(_ context.Context, strategy, text string, count int, params []figure.ParameterSet) {
	m.puts++
	m.stored[m.key(strategy, text, count)] = params
}

type failingComposer struct{}

func (failingComposer) Name() string { return "failing" }
func (failingComposer) Compose(string, int) ([]figure.ParameterSet, error) {
	return nil, errors.New("boom")
}

func newService() *Service {
	return New([]figure.Composer{figure.Classic{}, figure.Orbit{}}, "classic", 7, 64)
}

// --- Tests ---

func TestGenerate_Defaults(t *testing.T) {
	svc := newService()

	icon, err := svc.Generate(context.Background(), "Alice", 0, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if icon.Strategy != "classic" {
		t.Errorf("strategy = %q, want classic", icon.Strategy)
	}
	if len(icon.Primitives) != 7 {
		t.Errorf("primitives = %d, want default 7", len(icon.Primitives))
	}
	if icon.Text != "Alice" {
		t.Errorf("text = %q", icon.Text)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := newService()

	a, err := svc.Generate(context.Background(), "Alice", 5, "classic")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := svc.Generate(context.Background(), "Alice", 5, "classic")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a.Primitives {
		if a.Primitives[i] != b.Primitives[i] {
			t.Errorf("primitive %d differs between runs", i)
		}
	}
}

func TestGenerate_OrbitStrategy(t *testing.T) {
	svc := newService()

	icon, err := svc.Generate(context.Background(), "Alice", 0, "orbit")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Orbit ignores count: head + fixed ring.
	if len(icon.Primitives) != 9 {
		t.Errorf("primitives = %d, want 9", len(icon.Primitives))
	}
}

func TestGenerate_UnknownStrategy(t *testing.T) {
	svc := newService()

	_, err := svc.Generate(context.Background(), "Alice", 5, "spiral")
	if !errors.Is(err, domain.ErrUnknownStrategy) {
		t.Errorf("error = %v, want ErrUnknownStrategy", err)
	}
}

func TestGenerate_CountLimits(t *testing.T) {
	svc := newService()

	if _, err := svc.Generate(context.Background(), "Alice", 65, "classic"); !errors.Is(err, domain.ErrInvalidCount) {
		t.Errorf("count over max: error = %v, want ErrInvalidCount", err)
	}
	if _, err := svc.Generate(context.Background(), "Alice", -1, "classic"); !errors.Is(err, domain.ErrInvalidCount) {
		t.Errorf("negative count: error = %v, want ErrInvalidCount", err)
	}
}

func TestGenerate_ComposeError(t *testing.T) {
	svc := New([]figure.Composer{failingComposer{}}, "failing", 7, 64)

	if _, err := svc.Generate(context.Background(), "Alice", 5, "failing"); err == nil {
		t.Fatal("expected error from failing composer")
	}
}

func TestGenerate_UsesCache(t *testing.T) {
	cache := newMockCache()
	svc := newService().WithCache(cache)

	first, err := svc.Generate(context.Background(), "Alice", 5, "classic")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cache.puts != 1 {
		t.Errorf("puts = %d, want 1", cache.puts)
	}

	second, err := svc.Generate(context.Background(), "Alice", 5, "classic")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cache.puts != 1 {
		t.Errorf("puts after hit = %d, want still 1", cache.puts)
	}
	if cache.gets != 2 {
		t.Errorf("gets = %d, want 2", cache.gets)
	}
	for i := range first.Primitives {
		if first.Primitives[i] != second.Primitives[i] {
			t.Errorf("cached primitive %d differs", i)
		}
	}
}

func TestDerive_Validates(t *testing.T) {
	svc := newService()

	if _, err := svc.Derive("not-a-digest"); !errors.Is(err, domain.ErrInvalidDigest) {
		t.Errorf("error = %v, want ErrInvalidDigest", err)
	}

	d := svc.Digest("Alice", 0)
	ps, err := svc.Derive(d.String())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !ps.Shape.IsValid() {
		t.Errorf("shape %d out of set", ps.Shape)
	}
}

func TestStrategies(t *testing.T) {
	svc := newService()
	names := svc.Strategies()
	if len(names) != 2 {
		t.Fatalf("strategies = %v, want 2 entries", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["classic"] || !seen["orbit"] {
		t.Errorf("strategies = %v, want classic and orbit", names)
	}
}
