package analyzer

// Tables holds the static dictionaries the analyzer matches against. They
// are plain values injected at construction; DefaultTables returns the
// stock set.
type Tables struct {
	// TechKeywords maps a technology name to lowercase keywords matched
	// against file paths and contents.
	TechKeywords map[string][]string
	// ArchitecturePatterns maps an architectural style to lowercase
	// keywords matched against sampled file contents.
	ArchitecturePatterns map[string][]string
	// ConfigSignatures maps a filename or path fragment to the technology
	// label it indicates.
	ConfigSignatures map[string]string
}

// DefaultTables returns the built-in keyword dictionaries.
func DefaultTables() Tables {
	return Tables{
		TechKeywords:         defaultTechKeywords(),
		ArchitecturePatterns: defaultArchitecturePatterns(),
		ConfigSignatures:     defaultConfigSignatures(),
	}
}

func defaultTechKeywords() map[string][]string {
	return map[string][]string{
		// languages
		"python":     {"python", ".py", "requirements.txt", "setup.py", "pytest", "pipenv", "pip"},
		"javascript": {"javascript", ".js", "node_modules", "package.json", "npm", "yarn", "webpack", "babel", "eslint"},
		"typescript": {"typescript", ".ts", "tsconfig.json", "tslint"},
		"java":       {"java", ".java", "maven", "gradle", "pom.xml", "build.gradle", "spring", "jakarta", "javax"},
		"go":         {"golang", ".go", "go.mod", "go.sum"},
		"rust":       {"rust", ".rs", "cargo.toml", "rustc"},
		"c++":        {"c++", ".cpp", ".hpp", "cmake", "makefile", "clang", "gcc"},
		"c#":         {"c#", ".cs", ".net", "dotnet", "nuget", "csproj", "sln"},

		// frontend frameworks
		"react":   {"react", "jsx", "tsx", "react-dom", "create-react-app", "next.js"},
		"vue":     {"vue", "vuex", "nuxt", ".vue"},
		"angular": {"angular", "ng", "ngmodule", "@angular"},
		"svelte":  {"svelte", ".svelte"},

		// backend frameworks
		"django":      {"django", "settings.py", "urls.py", "views.py", "models.py"},
		"flask":       {"flask", "app.py", "wsgi.py"},
		"express":     {"express", "app.js", "routes"},
		"spring boot": {"spring-boot", "springboot", "application.properties", "application.yml"},
		"laravel":     {"laravel", ".blade.php", "artisan"},
		"fastapi":     {"fastapi", "uvicorn"},

		// databases
		"postgresql":    {"postgresql", "postgres", "psql", "pg"},
		"mysql":         {"mysql", "mariadb"},
		"mongodb":       {"mongodb", "mongo", "mongoose"},
		"redis":         {"redis", "redisio"},
		"elasticsearch": {"elasticsearch", "elastic", "elk"},
		"sqlite":        {"sqlite", ".db", ".sqlite"},

		// message queues
		"kafka":    {"kafka", "kclient"},
		"rabbitmq": {"rabbitmq", "amqp"},
		"celery":   {"celery", "celeryconfig"},

		// containers
		"docker":     {"docker", "dockerfile", "docker-compose"},
		"kubernetes": {"kubernetes", "k8s", "kubectl", "helm"},

		// CI/CD
		"jenkins":        {"jenkins", "jenkinsfile"},
		"github actions": {"github actions", "workflows", ".github/workflows"},
		"gitlab ci":      {"gitlab-ci", ".gitlab-ci.yml"},
		"travis":         {"travis", ".travis.yml"},

		// cloud
		"aws":   {"aws", "amazon web services", "s3", "ec2", "lambda", "cloudformation", "dynamodb"},
		"azure": {"azure", "microsoft azure", "cosmos db", "azure functions"},
		"gcp":   {"gcp", "google cloud", "google cloud platform", "bigquery", "cloud run"},

		// other tooling
		"graphql":    {"graphql", ".gql", "apollo"},
		"rest api":   {"rest", "restful", "api", "endpoint"},
		"websocket":  {"websocket", "ws", "socket.io"},
		"oauth":      {"oauth", "jwt", "authentication", "authorization"},
		"webpack":    {"webpack", "webpack.config.js"},
		"babel":      {"babel", ".babelrc"},
		"sass":       {"sass", "scss", ".scss"},
		"less":       {"less", ".less"},
		"tensorflow": {"tensorflow", "tf", "keras"},
		"pytorch":    {"pytorch", "torch"},
	}
}

func defaultArchitecturePatterns() map[string][]string {
	return map[string][]string{
		"microservices":      {"microservice", "service discovery", "api gateway", "circuit breaker"},
		"monolith":           {"monolith", "monolithic"},
		"serverless":         {"serverless", "faas", "function as a service", "lambda"},
		"mvc":                {"model", "view", "controller", "mvc"},
		"mvvm":               {"model", "view", "viewmodel", "mvvm"},
		"event driven":       {"event", "subscriber", "publisher", "event driven", "event sourcing"},
		"domain driven":      {"domain driven", "ddd", "bounded context", "aggregate"},
		"clean architecture": {"clean architecture", "usecase", "entity", "repository", "presenter"},
		"hexagonal":          {"hexagonal", "ports and adapters", "adapter", "port"},
	}
}

func defaultConfigSignatures() map[string]string {
	return map[string]string{
		"package.json":      "Node.js/JavaScript",
		"requirements.txt":  "Python",
		"Pipfile":           "Python",
		"pom.xml":           "Java/Maven",
		"build.gradle":      "Java/Gradle",
		"composer.json":     "PHP",
		"Gemfile":           "Ruby",
		"go.mod":            "Go",
		"cargo.toml":        "Rust",
		"Dockerfile":        "Docker",
		"docker-compose.yml": "Docker Compose",
		"Jenkinsfile":       "Jenkins",
		".github/workflows": "GitHub Actions",
		".gitlab-ci.yml":    "GitLab CI",
		"kubernetes":        "Kubernetes",
		"helm":              "Helm Charts",
		"terraform":         "Terraform",
		"angular.json":      "Angular",
		"vue.config.js":     "Vue.js",
		"next.config.js":    "Next.js",
		"nuxt.config.js":    "Nuxt.js",
		"tsconfig.json":     "TypeScript",
		"webpack.config.js": "Webpack",
		".babelrc":          "Babel",
	}
}
