// Package knowledge provides the static skill relationship graph and the
// readiness and learning-path computations built on top of it.
package knowledge

// prereqEdge is a directed edge meaning "Prereq should be known before the dependent skill"
type prereqEdge struct {
	Prereq   string
	Strength float64
}

// simEdge is an undirected similarity edge to a neighboring skill
type simEdge struct {
	Skill      string
	Similarity float64
}

// Graph holds the prerequisite DAG, the similarity graph, and the category
// table. It is built once at startup and is read-only afterwards, so it is
// safe to share across concurrent analyses.
type Graph struct {
	// predecessors maps a skill to its direct prerequisites
	predecessors map[string][]prereqEdge
	// successors maps a prerequisite to the skills it unlocks (BFS direction)
	successors map[string][]string
	// neighbors maps a skill to its similarity-graph neighbors
	neighbors map[string][]simEdge
	// categories maps a category bucket to its member skills
	categories map[string][]string
}

// prerequisitePairs is the hand-authored prerequisite table.
// Each entry reads "A is a prerequisite for B with the given strength".
var prerequisitePairs = []struct {
	From, To string
	Strength float64
}{
	// Programming fundamentals
	{"python basics", "machine learning", 0.9},
	{"python basics", "deep learning", 0.9},
	{"python basics", "nlp", 0.8},
	{"python basics", "data science", 0.9},

	// Math prerequisites
	{"linear algebra", "machine learning", 0.7},
	{"statistics", "machine learning", 0.8},
	{"calculus", "deep learning", 0.6},
	{"probability", "machine learning", 0.7},

	// ML progression
	{"machine learning", "deep learning", 0.8},
	{"machine learning", "nlp", 0.7},
	{"machine learning", "computer vision", 0.7},
	{"deep learning", "transformers", 0.9},
	{"deep learning", "gans", 0.8},
	{"nlp", "transformers", 0.8},

	// Tools progression
	{"python basics", "numpy", 0.9},
	{"numpy", "pandas", 0.8},
	{"pandas", "scikit-learn", 0.7},
	{"scikit-learn", "tensorflow", 0.6},
	{"scikit-learn", "pytorch", 0.6},

	// Web/API
	{"python basics", "flask", 0.7},
	{"python basics", "fastapi", 0.7},
	{"flask", "rest api", 0.8},
	{"fastapi", "rest api", 0.8},

	// DevOps
	{"linux", "docker", 0.8},
	{"docker", "kubernetes", 0.9},
	{"docker", "ci/cd", 0.7},

	// Cloud
	{"python basics", "aws", 0.5},
	{"docker", "aws", 0.7},
	{"docker", "gcp", 0.7},
}

// similarityPairs is the hand-authored similarity table (undirected)
var similarityPairs = []struct {
	A, B       string
	Similarity float64
}{
	// Similar frameworks
	{"tensorflow", "pytorch", 0.85},
	{"tensorflow", "keras", 0.90},
	{"flask", "fastapi", 0.80},
	{"flask", "django", 0.75},

	// Similar concepts
	{"machine learning", "deep learning", 0.70},
	{"nlp", "computer vision", 0.60},
	{"supervised learning", "unsupervised learning", 0.65},

	// Similar tools
	{"numpy", "pandas", 0.75},
	{"scikit-learn", "xgboost", 0.70},
	{"spacy", "nltk", 0.80},

	// Cloud platforms
	{"aws", "gcp", 0.85},
	{"aws", "azure", 0.85},
	{"gcp", "azure", 0.90},

	// DevOps
	{"docker", "podman", 0.90},
	{"kubernetes", "docker swarm", 0.75},
	{"jenkins", "gitlab ci", 0.80},

	// Databases
	{"mysql", "postgresql", 0.90},
	{"mongodb", "dynamodb", 0.75},
}

// categoryTable groups related skills into buckets used for category familiarity
var categoryTable = map[string][]string{
	"ml_frameworks":   {"tensorflow", "pytorch", "keras", "scikit-learn", "xgboost"},
	"nlp_tools":       {"spacy", "nltk", "transformers", "bert", "gpt"},
	"web_frameworks":  {"flask", "fastapi", "django", "express"},
	"cloud_platforms": {"aws", "gcp", "azure"},
	"containers":      {"docker", "kubernetes", "podman"},
	"databases":       {"mysql", "postgresql", "mongodb", "redis"},
}

// NewGraph builds the skill relationship graph from the static tables.
// The returned graph is immutable; callers must not modify it.
func NewGraph() *Graph {
	g := &Graph{
		predecessors: make(map[string][]prereqEdge),
		successors:   make(map[string][]string),
		neighbors:    make(map[string][]simEdge),
		categories:   categoryTable,
	}

	for _, p := range prerequisitePairs {
		g.predecessors[p.To] = append(g.predecessors[p.To], prereqEdge{Prereq: p.From, Strength: p.Strength})
		g.successors[p.From] = append(g.successors[p.From], p.To)
	}

	for _, s := range similarityPairs {
		g.neighbors[s.A] = append(g.neighbors[s.A], simEdge{Skill: s.B, Similarity: s.Similarity})
		g.neighbors[s.B] = append(g.neighbors[s.B], simEdge{Skill: s.A, Similarity: s.Similarity})
	}

	return g
}

// hasNode reports whether a skill appears in the prerequisite graph
func (g *Graph) hasNode(skill string) bool {
	if _, ok := g.predecessors[skill]; ok {
		return true
	}
	_, ok := g.successors[skill]
	return ok
}
