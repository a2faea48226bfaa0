//nolint:errcheck // Test helpers - error handling deferred to test assertions
package e2e

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/duoserve"
	"github.com/3-lines-studio/duoserve/example"
)

type testServer struct {
	app    *duoserve.Server
	srv    *httptest.Server
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := example.New(example.Dir()).Logging("")
	srv := httptest.NewServer(example.Router(app))
	t.Cleanup(srv.Close)

	return &testServer{
		app:    app,
		srv:    srv,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := s.client.Get(s.srv.URL + path)
	if err != nil {
		t.Fatalf("failed to get %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body of %s: %v", path, err)
	}
	return resp, string(body)
}

func assertHTTPStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d for %s", expected, resp.StatusCode, resp.Request.URL.Path)
	}
}

func assertContentType(t *testing.T, resp *http.Response, prefix string) {
	t.Helper()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, prefix) {
		t.Errorf("expected Content-Type %s, got %s for %s", prefix, ct, resp.Request.URL.Path)
	}
}

var blankLines = regexp.MustCompile(`\n\s*\n`)

func normalizeHTML(html string) string {
	return strings.TrimSpace(blankLines.ReplaceAllString(html, "\n"))
}

func matchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.MatchSnapshot(t, normalizeHTML(html))
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
