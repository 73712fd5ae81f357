package persona

import "regexp"

// Static lookup tables driving persona classification. Category order
// matters: the first matching category wins, so these are slices rather
// than maps.

type personaCategory struct {
	name     string
	keywords []string
}

var personaCategories = []personaCategory{
	{"researcher", []string{"research", "methodology", "analysis", "study", "findings", "literature", "academic", "publication", "data", "experiment"}},
	{"student", []string{"learn", "study", "exam", "concept", "understanding", "education", "knowledge", "practice", "tutorial", "explanation"}},
	{"analyst", []string{"analysis", "trend", "metrics", "performance", "evaluation", "comparison", "insight", "report", "assessment", "review"}},
	{"manager", []string{"strategy", "planning", "coordination", "team", "leadership", "decision", "execution", "oversight", "process", "management"}},
	{"planner", []string{"plan", "schedule", "organize", "coordinate", "timeline", "logistics", "arrangement", "preparation", "itinerary", "booking"}},
	{"contractor", []string{"service", "delivery", "quality", "specification", "requirement", "standard", "compliance", "execution", "performance", "contract"}},
	{"professional", []string{"expertise", "skill", "experience", "competency", "qualification", "practice", "standard", "protocol", "procedure", "guideline"}},
}

// fallbackHints maps domain hints to a persona type when no category
// matched directly.
var fallbackHints = []struct {
	hints []string
	typ   string
}{
	{[]string{"hr", "human", "resource"}, "professional"},
	{[]string{"food", "chef", "cook", "menu"}, "contractor"},
	{[]string{"travel", "trip", "tour"}, "planner"},
}

const defaultPersonaType = "professional"

type actionCategory struct {
	name     string
	synonyms []string
}

var actionCategories = []actionCategory{
	{"create", []string{"design", "build", "develop", "make", "construct", "generate", "produce", "establish"}},
	{"analyze", []string{"examine", "evaluate", "assess", "review", "investigate", "study", "research", "compare"}},
	{"plan", []string{"organize", "schedule", "prepare", "arrange", "coordinate", "design", "structure", "outline"}},
	{"manage", []string{"oversee", "supervise", "control", "direct", "handle", "administer", "govern", "lead"}},
	{"prepare", []string{"ready", "setup", "arrange", "organize", "compile", "assemble", "gather", "collect"}},
}

// forcedActions adds an action whenever any of its trigger terms appears
// in the job text, regardless of synonym matching.
var forcedActions = []struct {
	triggers []string
	action   string
}{
	{[]string{"menu", "food", "recipe"}, "prepare"},
	{[]string{"form", "document"}, "create"},
	{[]string{"trip", "travel", "itinerary"}, "plan"},
}

// taskKeywordSets extend domain keywords when the job text touches a
// known domain.
var taskKeywordSets = []struct {
	triggers []string
	keywords []string
}{
	{[]string{"menu", "food", "recipe", "vegetarian", "buffet"}, []string{"recipe", "ingredient", "cooking", "nutrition", "dietary"}},
	{[]string{"travel", "trip", "vacation", "tourist"}, []string{"destination", "activity", "accommodation", "transportation", "attraction"}},
	{[]string{"business", "corporate", "company", "professional"}, []string{"business", "corporate", "professional", "service", "quality"}},
	{[]string{"form", "hr", "employee", "onboarding"}, []string{"form", "employee", "process", "compliance", "documentation"}},
}

var dietaryTerms = []string{"vegetarian", "vegan", "gluten-free", "halal", "kosher", "dairy-free"}

var (
	groupSizeRe = regexp.MustCompile(`(\d+)\s*(people|person|friend|guest|individual)`)
	durationRe  = regexp.MustCompile(`(\d+)\s*(day|week|hour|month)`)
)

// specialNeedTags appends a tag when its trigger appears in the job text.
var specialNeedTags = []struct {
	trigger string
	tag     string
}{
	{"corporate", "professional"},
	{"buffet", "buffet-style"},
	{"college", "budget-friendly"},
}

var priorityAreas = map[string][]string{
	"researcher":   {"methodology", "analysis", "findings", "literature"},
	"student":      {"concepts", "examples", "explanations", "practice"},
	"planner":      {"logistics", "schedule", "activities", "recommendations"},
	"contractor":   {"specifications", "quality", "delivery", "requirements"},
	"professional": {"process", "compliance", "standards", "best-practices"},
}

var defaultPriorities = []string{"information", "details"}

var actionPriorities = map[string][]string{
	"create":  {"instructions", "steps", "tools", "templates"},
	"plan":    {"options", "schedule", "logistics", "recommendations"},
	"analyze": {"data", "comparison", "insights", "trends"},
	"prepare": {"ingredients", "materials", "steps", "requirements"},
}
