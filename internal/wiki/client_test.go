package wiki_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexis/internal/wiki"
)

// newWikiServer serves a minimal pair of Wikipedia endpoints: the action
// API search and the REST summary. titles maps search terms to page
// titles; summaries maps titles to extracts.
func newWikiServer(t *testing.T, titles map[string]string, summaries map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "query", q.Get("action"))
		assert.Equal(t, "search", q.Get("list"))
		assert.Equal(t, "1", q.Get("srlimit"))

		title, ok := titles[q.Get("srsearch")]
		if !ok {
			fmt.Fprint(w, `{"query":{"search":[]}}`)
			return
		}
		fmt.Fprintf(w, `{"query":{"search":[{"title":%q}]}}`, title)
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		title := strings.TrimPrefix(r.URL.Path, "/api/rest_v1/page/summary/")
		extract, ok := summaries[title]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"extract":%q}`, extract)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, opts ...wiki.Option) *wiki.Client {
	return wiki.NewClient(srv.URL+"/w/api.php", srv.URL+"/api/rest_v1/page/summary", opts...)
}

func TestSearchTitle(t *testing.T) {
	srv := newWikiServer(t,
		map[string]string{"Python programming": "Python (programming language)"},
		nil)
	client := newClient(srv)

	title, err := client.SearchTitle(context.Background(), "Python programming")
	require.NoError(t, err)
	assert.Equal(t, "Python (programming language)", title)

	title, err = client.SearchTitle(context.Background(), "no such thing")
	require.NoError(t, err)
	assert.Empty(t, title, "a miss is not an error")
}

func TestSummary(t *testing.T) {
	srv := newWikiServer(t, nil,
		map[string]string{"Python (programming language)": "Python is a high-level language."})
	client := newClient(srv)

	summary, err := client.Summary(context.Background(), "Python (programming language)")
	require.NoError(t, err)
	assert.Equal(t, "Python is a high-level language.", summary)

	_, err = client.Summary(context.Background(), "Missing Page")
	assert.Error(t, err)
}

func TestLookupFirst(t *testing.T) {
	srv := newWikiServer(t,
		map[string]string{
			"Python (genus)": "Python (genus)",
		},
		map[string]string{
			"Python (genus)": "Python is a genus of constricting snakes.",
		})
	client := newClient(srv)

	// The first term misses in search, the second resolves.
	summary, err := client.LookupFirst(context.Background(), []string{
		"Pythonidae snake species list", "Python (genus)",
	})
	require.NoError(t, err)
	assert.Equal(t, "Python is a genus of constricting snakes.", summary)
}

func TestLookupFirst_AllMiss(t *testing.T) {
	srv := newWikiServer(t, nil, nil)
	client := newClient(srv)

	summary, err := client.LookupFirst(context.Background(), []string{"nothing", "", "  "})
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestClient_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"query":{"search":[]}}`)
	}))
	t.Cleanup(srv.Close)

	client := wiki.NewClient(srv.URL, srv.URL, wiki.WithUserAgent("lexis-tests/0.1"))
	_, err := client.SearchTitle(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "lexis-tests/0.1", gotUA)
}

func TestTrimSummary(t *testing.T) {
	text := "First sentence here. Second sentence follows. Third sentence ends it."

	assert.Equal(t, text, wiki.TrimSummary(text, 0), "non-positive budget leaves text untouched")
	assert.Equal(t, text, wiki.TrimSummary(text, 3))
	assert.Equal(t, text, wiki.TrimSummary(text, 10))

	trimmed := wiki.TrimSummary(text, 2)
	assert.Equal(t, "First sentence here. Second sentence follows.", trimmed)

	assert.Empty(t, wiki.TrimSummary("", 2))
}
