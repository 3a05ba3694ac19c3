package blueprint

// Default returns the minimal-but-complete blueprint used when raw generator
// output cannot be parsed or repaired. It guarantees the pipeline downstream
// always receives a valid document.
func Default() *Blueprint {
	return &Blueprint{
		ProjectInfo: &ProjectInfo{
			Name:        "Generated Project",
			Description: "AI-generated project from PRD",
			Version:     "1.0.0",
			PackageName: "com.generated.app",
		},
		TechnologyStack: &TechnologyStack{
			Backend: &Backend{
				Framework: "Spring Boot",
				Version:   "3.2.0",
				Language:  "Java",
				Runtime:   "JDK 17",
			},
			Frontend: &Frontend{
				Framework:   "Angular",
				Version:     "17.0.0",
				UILibraries: []string{"Angular Material", "RxJS"},
			},
			Database: &Database{
				Type:       "PostgreSQL",
				Version:    "15.0",
				Additional: []string{"Flyway Migration", "Connection Pooling"},
			},
			BuildTool: "Maven",
		},
		Features: []Feature{
			{
				ID:          "user-management",
				Name:        "User Management",
				Description: "User registration, authentication, and profile management",
				Priority:    string(PriorityHigh),
				UserStories: []string{
					"As a user, I want to register an account",
					"As a user, I want to login securely",
					"As a user, I want to manage my profile",
				},
			},
			{
				ID:          "data-management",
				Name:        "Data Management",
				Description: "CRUD operations for core business entities",
				Priority:    string(PriorityHigh),
				UserStories: []string{
					"As a user, I want to create new records",
					"As a user, I want to view existing records",
					"As a user, I want to update records",
					"As a user, I want to delete records",
				},
			},
		},
		APIEndpoints: []Endpoint{
			{Path: "/api/auth/login", Method: "POST", Description: "User authentication endpoint"},
			{Path: "/api/users", Method: "GET", Description: "Get all users"},
			{Path: "/api/users", Method: "POST", Description: "Create new user"},
			{Path: "/api/data", Method: "GET", Description: "Get all data records"},
		},
		DatabaseSchema: &DatabaseSchema{
			Entities: []Entity{
				{
					Name:      "User",
					TableName: "users",
					Fields: []Field{
						{Name: "id", Type: "BIGINT", PrimaryKey: true},
						{Name: "username", Type: "VARCHAR(255)"},
						{Name: "email", Type: "VARCHAR(255)"},
						{Name: "password", Type: "VARCHAR(255)"},
					},
				},
				{
					Name:      "DataRecord",
					TableName: "data_records",
					Fields: []Field{
						{Name: "id", Type: "BIGINT", PrimaryKey: true},
						{Name: "name", Type: "VARCHAR(255)"},
						{Name: "description", Type: "TEXT", Nullable: true},
						{Name: "user_id", Type: "BIGINT", Nullable: true},
					},
				},
			},
		},
	}
}
