// Package keywords matches a fixed keyword taxonomy against resume text and
// produces per-category coverage scores.
package keywords

import "github.com/applytrack/resume-analyzer/internal/types"

// Category owns a static list of lowercase keywords and a scoring weight.
// The weight applies uniformly to every keyword in the category; it cancels
// out inside a category's own percentage but shifts the overall score toward
// or away from the category.
type Category struct {
	Key      types.CategoryKey
	Keywords []string
	Weight   float64
}

// Taxonomy returns the fixed keyword categories in their canonical order.
// Weights: core engineering categories count slightly more, soft skills
// slightly less, everything else at 1.0.
func Taxonomy() []Category {
	return taxonomy
}

// KeywordCount returns the number of keywords a category owns, or 0 for an
// unknown key.
func KeywordCount(key types.CategoryKey) int {
	for _, c := range taxonomy {
		if c.Key == key {
			return len(c.Keywords)
		}
	}
	return 0
}

var taxonomy = []Category{
	{
		Key:    types.CategoryFrontend,
		Weight: 1.2,
		Keywords: []string{
			"react", "angular", "vue", "javascript", "typescript", "html", "css",
			"sass", "redux", "next.js", "webpack", "tailwind", "bootstrap",
			"jquery", "responsive design",
		},
	},
	{
		Key:    types.CategoryBackend,
		Weight: 1.2,
		Keywords: []string{
			"node.js", "express", "django", "flask", "spring boot", "golang",
			"java", "python", "c#", ".net", "php", "laravel", "ruby on rails",
			"rest api", "graphql", "grpc", "microservices",
		},
	},
	{
		Key:    types.CategoryMobile,
		Weight: 1.0,
		Keywords: []string{
			"react native", "flutter", "swift", "kotlin", "android", "ios",
			"xamarin",
		},
	},
	{
		Key:    types.CategoryDatabase,
		Weight: 1.0,
		Keywords: []string{
			"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite",
			"oracle", "cassandra", "dynamodb", "elasticsearch", "nosql",
		},
	},
	{
		Key:    types.CategoryCloud,
		Weight: 1.0,
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"jenkins", "ci/cd", "ansible", "serverless", "lambda", "devops",
			"cloudformation",
		},
	},
	{
		Key:    types.CategoryDataScience,
		Weight: 1.0,
		Keywords: []string{
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"pandas", "numpy", "scikit-learn", "data analysis", "nlp",
			"computer vision", "tableau", "power bi", "spark",
		},
	},
	{
		Key:    types.CategorySecurity,
		Weight: 1.0,
		Keywords: []string{
			"cybersecurity", "penetration testing", "encryption", "oauth",
			"firewall", "vulnerability", "siem", "compliance",
		},
	},
	{
		Key:    types.CategoryTesting,
		Weight: 1.0,
		Keywords: []string{
			"unit testing", "integration testing", "selenium", "jest",
			"cypress", "junit", "pytest", "tdd", "qa automation", "mocha",
		},
	},
	{
		Key:    types.CategoryMethodologies,
		Weight: 1.0,
		Keywords: []string{
			"agile", "scrum", "kanban", "sprint", "jira", "confluence",
			"code review", "pair programming", "waterfall",
		},
	},
	{
		Key:    types.CategorySoftSkills,
		Weight: 0.8,
		Keywords: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"collaboration", "mentoring", "time management", "adaptability",
			"critical thinking", "presentation",
		},
	},
	{
		Key:    types.CategoryExperienceVerbs,
		Weight: 1.0,
		Keywords: []string{
			"developed", "implemented", "designed", "led", "managed", "built",
			"created", "improved", "optimized", "delivered", "launched",
			"architected", "automated", "reduced", "increased",
		},
	},
	{
		Key:    types.CategoryEducationTerms,
		Weight: 1.0,
		Keywords: []string{
			"bachelor", "master", "phd", "computer science", "engineering",
			"certification", "degree", "university", "gpa",
		},
	},
	{
		Key:    types.CategoryFintech,
		Weight: 1.0,
		Keywords: []string{
			"payments", "banking", "trading", "blockchain", "fraud detection",
			"risk management",
		},
	},
	{
		Key:    types.CategoryHealthcare,
		Weight: 1.0,
		Keywords: []string{
			"hipaa", "ehr", "clinical", "telehealth", "hl7",
		},
	},
	{
		Key:    types.CategoryEcommerce,
		Weight: 1.0,
		Keywords: []string{
			"shopify", "magento", "payment gateway", "inventory", "checkout",
			"marketplace",
		},
	},
}
