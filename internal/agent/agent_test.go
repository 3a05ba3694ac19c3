package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectforge/forge/internal/blueprint"
)

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func richBlueprint() *blueprint.Blueprint {
	return &blueprint.Blueprint{
		ProjectInfo: &blueprint.ProjectInfo{Name: "Shop"},
		TechnologyStack: &blueprint.TechnologyStack{
			Backend:  &blueprint.Backend{Framework: "Spring Boot"},
			Frontend: &blueprint.Frontend{Framework: "Angular"},
		},
		DatabaseSchema: &blueprint.DatabaseSchema{
			Entities: []blueprint.Entity{{Name: "User"}},
		},
	}
}

func TestFleetIdentity(t *testing.T) {
	client := &stubLLM{response: "{}"}
	tests := []struct {
		a        Agent
		name     string
		priority int
	}{
		{NewAnalyst(client, nil), "PRD-Analyst", 1},
		{NewDatabase(client, nil), "Database-Schema-Generator", 20},
		{NewBackend(client, nil), "Backend-Code-Generator", 30},
		{NewFrontend(client, nil), "Frontend-Code-Generator", 40},
		{NewDevOps(client, nil), "DevOps-Pipeline-Generator", 60},
		{NewQA(client, nil), "QA-Testing-Generator", 70},
		{NewStructure(client, nil), "Code-Structuring-Agent", 80},
		{NewIntegration(client, nil), "Integration-Assembly-Agent", 90},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.a.Name())
		assert.Equal(t, tt.priority, tt.a.Priority())
		assert.NotEmpty(t, tt.a.Description())
	}
}

func TestCanProcessPredicates(t *testing.T) {
	client := &stubLLM{}
	full := richBlueprint()
	empty := &blueprint.Blueprint{}

	// Always-on agents.
	for _, a := range []Agent{NewAnalyst(client, nil), NewQA(client, nil), NewStructure(client, nil), NewIntegration(client, nil)} {
		assert.True(t, a.CanProcess(full), a.Name())
		assert.True(t, a.CanProcess(empty), a.Name())
	}

	db := NewDatabase(client, nil)
	assert.True(t, db.CanProcess(full))
	assert.False(t, db.CanProcess(empty))
	assert.False(t, db.CanProcess(&blueprint.Blueprint{
		DatabaseSchema: &blueprint.DatabaseSchema{},
	}))
	assert.True(t, db.CanProcess(&blueprint.Blueprint{
		DatabaseSchema: &blueprint.DatabaseSchema{Tables: []blueprint.Entity{{Name: "T"}}},
	}))

	be := NewBackend(client, nil)
	assert.True(t, be.CanProcess(full))
	assert.False(t, be.CanProcess(empty))
	assert.False(t, be.CanProcess(&blueprint.Blueprint{
		TechnologyStack: &blueprint.TechnologyStack{Backend: &blueprint.Backend{}},
	}))

	fe := NewFrontend(client, nil)
	assert.True(t, fe.CanProcess(full))
	assert.False(t, fe.CanProcess(empty))

	devops := NewDevOps(client, nil)
	assert.True(t, devops.CanProcess(full))
	assert.False(t, devops.CanProcess(empty))
	assert.True(t, devops.CanProcess(&blueprint.Blueprint{
		Deployment: &blueprint.DeploymentConfig{Type: "docker"},
	}))
}

func TestProcessDecodesStructuredOutput(t *testing.T) {
	client := &stubLLM{response: "```json\n{\"files\": {\"schema.sql\": \"CREATE TABLE users;\"}}\n```"}
	a := NewDatabase(client, nil)

	res := a.Process(context.Background(), richBlueprint())

	require.True(t, res.Success)
	assert.Equal(t, "Database-Schema-Generator", res.Agent)
	out, ok := res.Output.(map[string]any)
	require.True(t, ok, "output should be decoded into an object")
	assert.Contains(t, out, "files")
}

func TestProcessKeepsRawTextWhenNotJSON(t *testing.T) {
	client := &stubLLM{response: "plain prose output"}
	a := NewQA(client, nil)

	res := a.Process(context.Background(), richBlueprint())

	require.True(t, res.Success)
	assert.Equal(t, "plain prose output", res.Output)
}

func TestProcessFailureCarriesAgentName(t *testing.T) {
	client := &stubLLM{err: errors.New("provider down")}
	a := NewBackend(client, nil)

	res := a.Process(context.Background(), richBlueprint())

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Backend-Code-Generator failed")
	assert.Contains(t, res.Message, "provider down")
	assert.Nil(t, res.Output)
}

func TestProcessRendersBlueprintIntoPrompt(t *testing.T) {
	client := &stubLLM{response: "{}"}
	a := NewBackend(client, nil)

	a.Process(context.Background(), richBlueprint())

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Shop")
	assert.NotContains(t, client.prompts[0], "{blueprint}")
}

func TestAnalyzePRDRendersContent(t *testing.T) {
	client := &stubLLM{response: `{"project_info": {"name": "FromPRD"}}`}
	a := NewAnalyst(client, nil)

	raw, err := a.AnalyzePRD(context.Background(), "Build a task tracker", &blueprint.Blueprint{})

	require.NoError(t, err)
	assert.Contains(t, raw, "FromPRD")
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Build a task tracker")
}

func TestPromptsLoaded(t *testing.T) {
	for _, key := range []string{"analyst", "database", "backend", "frontend", "devops", "qa", "structure", "integration"} {
		assert.NotEmpty(t, promptFor(key), "prompt %q missing", key)
	}
}

func TestRender(t *testing.T) {
	out := render("generate {thing} for {name}", map[string]string{"thing": "code", "name": "Shop"})
	assert.Equal(t, "generate code for Shop", out)
}

func TestMillisRoundTrip(t *testing.T) {
	m := Millis(1500 * time.Millisecond)
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1500", string(data))

	var back Millis
	require.NoError(t, back.UnmarshalJSON([]byte("250")))
	assert.Equal(t, 250*time.Millisecond, back.Duration())
}

func TestDescribe(t *testing.T) {
	a := NewAnalyst(&stubLLM{}, nil)
	info := Describe(a)
	assert.Equal(t, a.Name(), info.Name)
	assert.Equal(t, a.Priority(), info.Priority)
	assert.Equal(t, a.Description(), info.Description)
}
