package patriotai

import "sort"

const (
	PlatformName = "PatriotAI"
	PlatformURL  = "https://patriotai.gmu.edu"
	Provider     = "Cloudforce nebulaONE® on Microsoft Azure"
	agentsURL    = "https://patriotai.gmu.edu/chat/agents"
)

// Agent is a PatriotAI assistant that campus questions can be routed to.
type Agent struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Emoji          string   `json:"emoji"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	ExampleQueries []string `json:"example_queries"`
	keywords       []string
}

var agents = map[string]Agent{
	"PatriotPal": {
		Key:         "PatriotPal",
		Name:        "PatriotPal",
		Emoji:       "🎓",
		Description: "Your virtual assistant for campus services, academic policies, and student life at GMU.",
		URL:         agentsURL,
		keywords: []string{
			"register", "registration", "class", "classes", "enrollment",
			"financial aid", "fafsa", "scholarship", "tuition",
			"housing", "dorm", "residence", "parking", "permit",
			"campus", "building", "office hours", "advising", "advisor",
			"graduation", "degree", "transcript", "gpa",
			"library", "fenwick", "student services",
			"health center", "counseling", "disability",
			"mason id", "patriot pass", "blackboard", "canvas",
		},
		ExampleQueries: []string{
			"How do I register for classes?",
			"Where is the financial aid office?",
			"What are the parking rules on campus?",
		},
	},
	"NourishNet": {
		Key:         "NourishNet",
		Name:        "NourishNet",
		Emoji:       "🍎",
		Description: "Compassionate guidance on food access programs, meal plans, and food insecurity resources at GMU.",
		URL:         agentsURL,
		keywords: []string{
			"food", "hungry", "meal", "meal plan", "dining",
			"food pantry", "food bank", "food insecurity",
			"grocery", "snap", "food stamps", "ebt",
			"campus dining", "southside", "ike's", "blaze",
			"affordable food", "free food", "food assistance",
			"nutrition", "eat", "lunch", "dinner", "breakfast",
		},
		ExampleQueries: []string{
			"Where can I get free food on campus?",
			"How do I access the campus food pantry?",
			"What meal plan options are available?",
		},
	},
	"CourseMate": {
		Key:         "CourseMate",
		Name:        "CourseMate",
		Emoji:       "📚",
		Description: "Your learning assistant to understand lectures, analyze research articles, and prepare for exams.",
		URL:         agentsURL,
		keywords: []string{
			"study", "exam", "test", "midterm", "final",
			"lecture", "textbook", "homework", "assignment",
			"understand", "explain concept", "tutoring",
			"research article", "paper", "reading",
			"quiz", "practice", "review",
		},
		ExampleQueries: []string{
			"Help me understand this lecture topic",
			"How should I prepare for my CS exam?",
			"Can you explain this research article?",
		},
	},
	"DocuMate": {
		Key:         "DocuMate",
		Name:        "DocuMate",
		Emoji:       "📄",
		Description: "Analyze documents, summarize papers, extract key concepts, and do cross-document analysis.",
		URL:         agentsURL,
		keywords: []string{
			"document", "pdf", "summarize", "summary",
			"analyze paper", "research paper", "key concepts",
			"cross-document", "extract", "literature review",
		},
		ExampleQueries: []string{
			"Summarize this research paper for me",
			"Extract key concepts from my reading",
		},
	},
}

// Agents the chat model may name in a route tag but which have no keyword routing.
var taggedOnly = map[string]Agent{
	"PatriotChat": {
		Key:         "PatriotChat",
		Name:        "Patriot Chat",
		Emoji:       "💬",
		Description: "General-purpose conversational AI assistant",
		URL:         agentsURL,
	},
	"SyllaBright": {
		Key:         "SyllaBright",
		Name:        "SyllaBright",
		Emoji:       "🗂️",
		Description: "Course design assistant for faculty",
		URL:         agentsURL,
	},
}

func GetAgent(key string) (Agent, bool) {
	if agent, exists := agents[key]; exists {
		return agent, true
	}
	agent, exists := taggedOnly[key]
	return agent, exists
}

// AllAgents lists the routable agents ordered by key.
func AllAgents() []Agent {
	out := make([]Agent, 0, len(agents))
	for _, a := range agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Directory is the agent listing served to clients.
type Directory struct {
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Provider string  `json:"provider"`
	Agents   []Agent `json:"agents"`
}

func ListDirectory() Directory {
	return Directory{
		Platform: PlatformName,
		URL:      PlatformURL,
		Provider: Provider,
		Agents:   AllAgents(),
	}
}
