package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<div class="job-description">
				<h2>Machine Learning Engineer</h2>
				<p>We need 3+ years of Python and TensorFlow experience.</p>
			</div>
			<footer>Legal</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, metadata, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Contains(t, text, "Machine Learning Engineer")
	assert.Contains(t, text, "TensorFlow")
	assert.NotContains(t, text, "Menu")
	assert.Equal(t, SourceURL, metadata.Source)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, "unknown", metadata.Platform)
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "not-a-url", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}
