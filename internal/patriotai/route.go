package patriotai

import (
	"fmt"
	"sort"
	"strings"
)

// minRouteScore keeps a lone short keyword like "eat" from triggering a route.
const minRouteScore = 4

type Route struct {
	AgentKey         string   `json:"agent_key"`
	AgentName        string   `json:"agent_name"`
	AgentEmoji       string   `json:"agent_emoji"`
	AgentDescription string   `json:"agent_description"`
	AgentURL         string   `json:"agent_url"`
	MatchedKeywords  []string `json:"matched_keywords"`
	ExampleQueries   []string `json:"example_queries"`
}

// DetectRoute scores every agent by the summed length of the keywords found in
// message and returns the best match, or nil when nothing clears the threshold.
func DetectRoute(message string) *Route {
	lower := strings.ToLower(message)

	bestKey := ""
	bestScore := 0
	var bestMatched []string
	for _, agent := range AllAgents() {
		score := 0
		var matched []string
		for _, kw := range agent.keywords {
			if strings.Contains(lower, kw) {
				score += len(kw)
				matched = append(matched, kw)
			}
		}
		if score > bestScore {
			bestKey, bestScore, bestMatched = agent.Key, score, matched
		}
	}
	if bestScore < minRouteScore {
		return nil
	}

	agent := agents[bestKey]
	return &Route{
		AgentKey:         agent.Key,
		AgentName:        agent.Name,
		AgentEmoji:       agent.Emoji,
		AgentDescription: agent.Description,
		AgentURL:         agent.URL,
		MatchedKeywords:  bestMatched,
		ExampleQueries:   agent.ExampleQueries,
	}
}

// Reason is the user-facing hint attached to a keyword-routed chat reply.
func (r *Route) Reason() string {
	return fmt.Sprintf("%s For the best answer, try %s on PatriotAI: %s", r.AgentEmoji, r.AgentName, r.AgentDescription)
}

// ExtractRouteTag strips the first [ROUTE:<Agent>] tag the chat model appended to
// reply. It returns the cleaned reply and the agent, if a known tag was present.
func ExtractRouteTag(reply string) (string, *Agent) {
	keys := make([]string, 0, len(agents)+len(taggedOnly))
	for k := range agents {
		keys = append(keys, k)
	}
	for k := range taggedOnly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		tag := "[ROUTE:" + key + "]"
		if strings.Contains(reply, tag) {
			agent, _ := GetAgent(key)
			return strings.TrimSpace(strings.ReplaceAll(reply, tag, "")), &agent
		}
	}
	return reply, nil
}

// TagReason explains a model-chosen route.
func (a *Agent) TagReason() string {
	return fmt.Sprintf("This question can be better answered by %s on PatriotAI: %s", a.Name, a.Description)
}

// Decision is the answer to an explicit routing query.
type Decision struct {
	ShouldRoute bool   `json:"should_route"`
	Route       *Route `json:"route,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func Decide(message string) Decision {
	route := DetectRoute(message)
	if route == nil {
		return Decision{}
	}
	return Decision{ShouldRoute: true, Route: route, Reason: route.Reason()}
}
