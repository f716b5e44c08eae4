package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/notmytype/internal/cache"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/worker"
)

const webfontsJSON = `{"kind":"webfonts#webfontList","items":[
{"family":"Roboto","category":"sans-serif","variants":["regular","700"],"subsets":["latin"]},
{"family":"Open Sans","category":"sans-serif","variants":["regular"],"subsets":["latin"]},
{"family":"Playfair Display","category":"serif","variants":["regular","700"],"subsets":["latin"]},
{"family":"Roboto Mono","category":"monospace","variants":["regular"],"subsets":["latin"]},
{"family":"Caveat","category":"handwriting","variants":["regular"],"subsets":["latin"]}
]}`

func testConfig(apiURL, key string) model.CatalogConfig {
	return model.CatalogConfig{
		APIURL:       apiURL,
		APIKey:       key,
		Sort:         "popularity",
		Timeout:      5 * time.Second,
		UserAgent:    "test-agent",
		MaxBodyBytes: 1 << 20,
		PopularLimit: 2,
	}
}

func webfontsServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("missing api key in %s", r.URL)
		}
		if r.URL.Query().Get("sort") != "popularity" {
			t.Errorf("missing sort in %s", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, webfontsJSON)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Fonts(t *testing.T) {
	var hits atomic.Int32
	server := webfontsServer(t, &hits)

	client := NewClient(testConfig(server.URL, "secret"))
	fonts := client.Fonts(context.Background())

	if len(fonts) != 5 {
		t.Fatalf("Expected 5 fonts, got %d", len(fonts))
	}
	if fonts[2].Family != "Playfair Display" || fonts[2].Category != "serif" {
		t.Errorf("Unexpected font: %+v", fonts[2])
	}
	if len(fonts[0].Variants) != 2 {
		t.Errorf("Expected variants decoded, got %v", fonts[0].Variants)
	}
}

func TestClient_MissingKeyReturnsEmpty(t *testing.T) {
	var hits atomic.Int32
	server := webfontsServer(t, &hits)

	fonts := NewClient(testConfig(server.URL, "")).Fonts(context.Background())

	if fonts == nil || len(fonts) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", fonts)
	}
	if hits.Load() != 0 {
		t.Errorf("Expected no request without api key, got %d", hits.Load())
	}
}

func TestClient_ServerErrorReturnsEmpty(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fonts := NewClient(testConfig(server.URL, "secret")).Fonts(context.Background())

	if len(fonts) != 0 {
		t.Errorf("Expected empty list, got %v", fonts)
	}
	if attempts.Load() != fetchMaxRetries {
		t.Errorf("Expected %d attempts, got %d", fetchMaxRetries, attempts.Load())
	}
}

func TestClient_MalformedResponseReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	if fonts := NewClient(testConfig(server.URL, "secret")).Fonts(context.Background()); len(fonts) != 0 {
		t.Errorf("Expected empty list, got %v", fonts)
	}
}

func TestClient_CachesResponse(t *testing.T) {
	var hits atomic.Int32
	server := webfontsServer(t, &hits)

	client := NewClient(testConfig(server.URL, "secret"),
		WithCache(cache.NewMemoryCache(time.Minute, time.Minute)),
		WithLimiter(worker.NewLimiter(100, 4)),
	)

	first := client.Fonts(context.Background())
	second := client.Fonts(context.Background())

	if hits.Load() != 1 {
		t.Errorf("Expected 1 upstream request, got %d", hits.Load())
	}
	if len(first) != len(second) || second[0].Family != "Roboto" {
		t.Errorf("Cached result differs: %v vs %v", first, second)
	}
}

func TestClient_Search(t *testing.T) {
	var hits atomic.Int32
	server := webfontsServer(t, &hits)
	client := NewClient(testConfig(server.URL, "secret"))
	ctx := context.Background()

	popular := client.Search(ctx, "  ")
	if len(popular) != 2 || popular[0].Family != "Roboto" || popular[1].Family != "Open Sans" {
		t.Errorf("Expected top 2 popular fonts, got %v", popular)
	}

	matched := client.Search(ctx, "ROBOTO")
	if len(matched) != 2 {
		t.Fatalf("Expected 2 matches, got %v", matched)
	}
	if matched[0].Family != "Roboto" || matched[1].Family != "Roboto Mono" {
		t.Errorf("Unexpected matches: %v", matched)
	}

	if none := client.Search(ctx, "zzz"); none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil result, got %v", none)
	}
}

func TestFilterByCategory(t *testing.T) {
	fonts := []model.CatalogFont{
		{Family: "Roboto", Category: "sans-serif"},
		{Family: "Lora", Category: "serif"},
		{Family: "Caveat", Category: "handwriting"},
	}

	if got := FilterByCategory(fonts, ""); len(got) != 3 {
		t.Errorf("Expected all fonts for empty category, got %d", len(got))
	}
	got := FilterByCategory(fonts, "serif")
	if len(got) != 1 || got[0].Family != "Lora" {
		t.Errorf("Expected only Lora, got %v", got)
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	want := []string{"serif", "sans-serif", "display", "handwriting", "monospace"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	got[0] = "mutated"
	if Categories()[0] != "serif" {
		t.Error("Categories must return a copy")
	}
}
