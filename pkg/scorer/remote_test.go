package scorer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mind-screen-go/internal/config"
	"mind-screen-go/internal/feature"
	"mind-screen-go/pkg/log"
	"mind-screen-go/pkg/scorer"
)

func TestMain(m *testing.M) {
	log.Init(config.LogConfig{Level: "error", Format: "console"})
	os.Exit(m.Run())
}

func testVector() feature.FeatureVector {
	return feature.FeatureVector{
		Columns: []string{"Age", "CGPA"},
		Values:  []float64{21, 8.5},
	}
}

func TestRemoteScorer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Columns []string  `json:"columns"`
			Values  []float64 `json:"values"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"Age", "CGPA"}, req.Columns)

		_ = json.NewEncoder(w).Encode(map[string]float64{"probability": 0.82})
	}))
	defer srv.Close()

	s := scorer.NewRemoteScorer(config.RemoteScorerConfig{BaseURL: srv.URL, TimeoutSeconds: 5})

	p, err := s.Score(context.Background(), testVector())
	require.NoError(t, err)
	assert.InDelta(t, 0.82, p, 1e-12)
}

func TestRemoteScorer_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := scorer.NewRemoteScorer(config.RemoteScorerConfig{BaseURL: srv.URL})

	_, err := s.Score(context.Background(), testVector())
	assert.Error(t, err)
}

func TestRemoteScorer_OutOfRangeProbability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]float64{"probability": 1.4})
	}))
	defer srv.Close()

	s := scorer.NewRemoteScorer(config.RemoteScorerConfig{BaseURL: srv.URL})

	_, err := s.Score(context.Background(), testVector())
	assert.Error(t, err)
}

func TestRemoteScorer_ServerUnreachable(t *testing.T) {
	s := scorer.NewRemoteScorer(config.RemoteScorerConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1})

	_, err := s.Score(context.Background(), testVector())
	assert.Error(t, err)
}
