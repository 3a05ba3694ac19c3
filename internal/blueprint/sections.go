package blueprint

// Feature is one user-facing capability extracted from the PRD.
type Feature struct {
	ID                 string         `json:"id,omitempty"`
	Name               string         `json:"name,omitempty"`
	Description        string         `json:"description,omitempty"`
	Priority           string         `json:"priority,omitempty"`
	UserStories        []string       `json:"user_stories,omitempty"`
	AcceptanceCriteria []string       `json:"acceptance_criteria,omitempty"`
	Requirements       map[string]any `json:"requirements,omitempty"`
}

// Endpoint describes one REST API endpoint of the generated project.
type Endpoint struct {
	Path         string      `json:"path,omitempty"`
	Method       string      `json:"method,omitempty"`
	Description  string      `json:"description,omitempty"`
	Parameters   []Parameter `json:"parameters,omitempty"`
	RequestBody  *BodySchema `json:"request_body,omitempty"`
	ResponseBody *BodySchema `json:"response_body,omitempty"`
	Security     []string    `json:"security,omitempty"`
}

// Parameter is a path, query, or header parameter of an endpoint.
type Parameter struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
}

// BodySchema is the loosely typed schema of a request or response body.
type BodySchema struct {
	ContentType string         `json:"content_type,omitempty"`
	Schema      map[string]any `json:"schema,omitempty"`
}

// DatabaseSchema collects the entities and relationships of the data model.
// Tables holds entities recovered from documents that arrived as a bare
// array; readers should treat it as an alias for Entities.
type DatabaseSchema struct {
	Entities      []Entity       `json:"entities,omitempty"`
	Tables        []Entity       `json:"tables,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`
}

// AllEntities returns entities regardless of which field they arrived in.
func (s *DatabaseSchema) AllEntities() []Entity {
	if s == nil {
		return nil
	}
	if len(s.Entities) > 0 {
		return s.Entities
	}
	return s.Tables
}

// Entity is one persistent entity and its table mapping.
type Entity struct {
	Name      string   `json:"name,omitempty"`
	TableName string   `json:"table_name,omitempty"`
	Fields    []Field  `json:"fields,omitempty"`
	Indexes   []string `json:"indexes,omitempty"`
}

// Field is one column of an entity.
type Field struct {
	Name        string         `json:"name,omitempty"`
	Type        string         `json:"type,omitempty"`
	Nullable    bool           `json:"nullable,omitempty"`
	PrimaryKey  bool           `json:"primary_key,omitempty"`
	Default     string         `json:"default,omitempty"`
	Constraints map[string]any `json:"constraints,omitempty"`
}

// Relationship links two entities.
type Relationship struct {
	Type       string `json:"type,omitempty"`
	FromEntity string `json:"from_entity,omitempty"`
	FromField  string `json:"from_field,omitempty"`
	ToEntity   string `json:"to_entity,omitempty"`
	ToField    string `json:"to_field,omitempty"`
}

// FrontendComponent describes one UI component to generate.
type FrontendComponent struct {
	Name         string         `json:"name,omitempty"`
	Type         string         `json:"type,omitempty"`
	Path         string         `json:"path,omitempty"`
	Template     string         `json:"template,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	Methods      []string       `json:"methods,omitempty"`
	Routes       []string       `json:"routes,omitempty"`
}

// BusinessRule captures one condition/action rule of the domain logic.
type BusinessRule struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	Action       string   `json:"action,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// AuthenticationConfig describes the authentication scheme.
type AuthenticationConfig struct {
	Type        string            `json:"type,omitempty"`
	Provider    string            `json:"provider,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"`
	Roles       []string          `json:"roles,omitempty"`
	Permissions []string          `json:"permissions,omitempty"`
}

// DeploymentConfig describes how the project is deployed.
type DeploymentConfig struct {
	Type        string            `json:"type,omitempty"`
	Environment map[string]string `json:"environment,omitempty"`
	Docker      *DockerConfig     `json:"docker,omitempty"`
	Cloud       *CloudConfig      `json:"cloud,omitempty"`
}

// DockerConfig describes the container image setup.
type DockerConfig struct {
	BaseImage   string            `json:"base_image,omitempty"`
	Ports       []string          `json:"ports,omitempty"`
	Environment map[string]string `json:"environment,omitempty"`
	Volumes     []string          `json:"volumes,omitempty"`
}

// CloudConfig describes the cloud target.
type CloudConfig struct {
	Provider  string         `json:"provider,omitempty"`
	Region    string         `json:"region,omitempty"`
	Resources map[string]any `json:"resources,omitempty"`
}

// TestingConfig describes the testing requirements.
type TestingConfig struct {
	Types     []string       `json:"types,omitempty"`
	Framework string         `json:"framework,omitempty"`
	TestCases []string       `json:"test_cases,omitempty"`
	Coverage  map[string]any `json:"coverage,omitempty"`
}
