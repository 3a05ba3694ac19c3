package blueprint

import "strings"

// Blueprint is the structured description of a project to be generated.
// Every section is optional; a section that is present is always well-formed
// (the normalizer guarantees container kinds before a Blueprint is built).
type Blueprint struct {
	ProjectInfo        *ProjectInfo          `json:"project_info,omitempty"`
	TechnologyStack    *TechnologyStack      `json:"technology_stack,omitempty"`
	Features           []Feature             `json:"features,omitempty"`
	APIEndpoints       []Endpoint            `json:"api_endpoints,omitempty"`
	DatabaseSchema     *DatabaseSchema       `json:"database_schema,omitempty"`
	FrontendComponents []FrontendComponent   `json:"frontend_components,omitempty"`
	BusinessLogic      []BusinessRule        `json:"business_logic,omitempty"`
	Authentication     *AuthenticationConfig `json:"authentication,omitempty"`
	Deployment         *DeploymentConfig     `json:"deployment,omitempty"`
	Testing            *TestingConfig        `json:"testing_requirements,omitempty"`
}

// Empty reports whether no section of the blueprint carries any data.
// The normalizer refuses to hand an empty document downstream.
func (b *Blueprint) Empty() bool {
	if b == nil {
		return true
	}
	return b.ProjectInfo == nil &&
		b.TechnologyStack == nil &&
		len(b.Features) == 0 &&
		len(b.APIEndpoints) == 0 &&
		b.DatabaseSchema == nil &&
		len(b.FrontendComponents) == 0 &&
		len(b.BusinessLogic) == 0 &&
		b.Authentication == nil &&
		b.Deployment == nil &&
		b.Testing == nil
}

// Name returns the project name, or a placeholder when project info is absent.
func (b *Blueprint) Name() string {
	if b == nil || b.ProjectInfo == nil || b.ProjectInfo.Name == "" {
		return "unknown"
	}
	return b.ProjectInfo.Name
}

// ProjectInfo identifies the project being generated.
type ProjectInfo struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Version     string            `json:"version,omitempty"`
	PackageName string            `json:"package_name,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// TechnologyStack describes the frameworks and tooling of the target project.
type TechnologyStack struct {
	Frontend  *Frontend `json:"frontend,omitempty"`
	Backend   *Backend  `json:"backend,omitempty"`
	Database  *Database `json:"database,omitempty"`
	BuildTool string    `json:"build_tool,omitempty"`
}

// Frontend describes the frontend framework selection.
type Frontend struct {
	Framework   string   `json:"framework,omitempty"`
	Version     string   `json:"version,omitempty"`
	UILibraries []string `json:"ui_libraries,omitempty"`
}

// Backend describes the backend framework selection.
type Backend struct {
	Framework string `json:"framework,omitempty"`
	Version   string `json:"version,omitempty"`
	Language  string `json:"language,omitempty"`
	Runtime   string `json:"runtime,omitempty"`
}

// Database describes the database selection. Additional is always a list of
// strings; the normalizer coerces key/value maps into "key:value" entries.
type Database struct {
	Type       string   `json:"type,omitempty"`
	Version    string   `json:"version,omitempty"`
	Additional []string `json:"additional,omitempty"`
}

// Priority ranks a feature or business rule.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// NormalizePriority coerces free-form priority text into the enum,
// defaulting to MEDIUM.
func NormalizePriority(s string) Priority {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return PriorityHigh
	case "LOW":
		return PriorityLow
	default:
		return PriorityMedium
	}
}
