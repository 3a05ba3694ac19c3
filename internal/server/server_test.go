package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectforge/forge/internal/agent"
	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/generation"
	"github.com/projectforge/forge/internal/infrastructure/config"
	"github.com/projectforge/forge/internal/orchestrator"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Complete(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestServer(client *stubLLM) *Server {
	gin.SetMode(gin.TestMode)

	analyst := agent.NewAnalyst(client, nil)
	fleet := []agent.Agent{
		analyst,
		agent.NewQA(client, nil),
		agent.NewIntegration(client, nil),
	}
	orch := orchestrator.New(fleet)
	norm := blueprint.NewNormalizer()
	svc := generation.NewService(analyst, norm, orch)

	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	cfg.Logging.Development = true

	return New(cfg, Deps{
		Service:      svc,
		Orchestrator: orch,
		Normalizer:   norm,
	})
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "forge", body["service"])
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(3), body["agents"])
}

func TestListAgentsEndpoint(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodGet, "/v1/agents", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Agents []struct {
			Name     string `json:"name"`
			Priority int    `json:"priority"`
		} `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Agents, 3)
	assert.Equal(t, "PRD-Analyst", body.Agents[0].Name)
	assert.Equal(t, "Integration-Assembly-Agent", body.Agents[2].Name)
}

func TestNormalizeEndpoint(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodPost, "/v1/blueprint/normalize",
		`{"text": "{\"features\": {\"f1\": {\"name\": \"Login\"}}}"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Blueprint blueprint.Blueprint `json:"blueprint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Blueprint.Features, 1)
	assert.Equal(t, "f1", body.Blueprint.Features[0].ID)
	assert.Equal(t, "Login", body.Blueprint.Features[0].Name)
}

func TestNormalizeEndpointRequiresText(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodPost, "/v1/blueprint/normalize", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateFromPRD(t *testing.T) {
	srv := newTestServer(&stubLLM{response: `{"project_info": {"name": "Tracker"}}`})

	w := do(t, srv, http.MethodPost, "/v1/generate", `{"prd": "Build a task tracker"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Blueprint blueprint.Blueprint `json:"blueprint"`
		Run       struct {
			Success      bool `json:"success"`
			AgentResults []struct {
				Agent   string `json:"agent"`
				Success bool   `json:"success"`
			} `json:"agent_results"`
		} `json:"run"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Tracker", out.Blueprint.Name())
	assert.True(t, out.Run.Success)
	assert.Len(t, out.Run.AgentResults, 3)
}

func TestGenerateFromBlueprint(t *testing.T) {
	srv := newTestServer(&stubLLM{response: `{"files": {}}`})

	w := do(t, srv, http.MethodPost, "/v1/generate",
		`{"blueprint": {"project_info": {"name": "Direct"}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Blueprint blueprint.Blueprint `json:"blueprint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Direct", out.Blueprint.Name())
}

func TestGenerateRequiresInput(t *testing.T) {
	srv := newTestServer(&stubLLM{response: "{}"})

	w := do(t, srv, http.MethodPost, "/v1/generate", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateReportsAnalysisFailure(t *testing.T) {
	srv := newTestServer(&stubLLM{err: errors.New("provider down")})

	w := do(t, srv, http.MethodPost, "/v1/generate", `{"prd": "anything"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
