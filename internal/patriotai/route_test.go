package patriotai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRoute(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"food pantry goes to NourishNet", "Where is the campus food pantry?", "NourishNet"},
		{"parking goes to PatriotPal", "What are the PARKING permit rules?", "PatriotPal"},
		{"exam prep goes to CourseMate", "How should I study for my midterm exam", "CourseMate"},
		{"papers go to DocuMate", "Can you summarize this pdf", "DocuMate"},
		{"sustainability question is not routed", "How do I recycle glass bottles?", ""},
		{"short keyword stays below threshold", "eat", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := DetectRoute(tt.message)
			if tt.want == "" {
				assert.Nil(t, route)
				return
			}
			require.NotNil(t, route)
			assert.Equal(t, tt.want, route.AgentKey)
			assert.NotEmpty(t, route.MatchedKeywords)
			assert.Contains(t, route.Reason(), route.AgentName)
		})
	}
}

func TestExtractRouteTag(t *testing.T) {
	reply, agent := ExtractRouteTag("Try the food pantry in the SUB! 🌿\n[ROUTE:NourishNet]")
	require.NotNil(t, agent)
	assert.Equal(t, "NourishNet", agent.Key)
	assert.Equal(t, "Try the food pantry in the SUB! 🌿", reply)
	assert.Contains(t, agent.TagReason(), "NourishNet")

	reply, agent = ExtractRouteTag("Compost your banana peel.")
	assert.Nil(t, agent)
	assert.Equal(t, "Compost your banana peel.", reply)

	_, agent = ExtractRouteTag("ok [ROUTE:SyllaBright]")
	require.NotNil(t, agent)
	assert.Equal(t, "SyllaBright", agent.Key)
}

func TestAllAgentsSorted(t *testing.T) {
	all := AllAgents()
	require.Len(t, all, 4)
	assert.Equal(t, "CourseMate", all[0].Key)
	assert.Equal(t, "PatriotPal", all[3].Key)
}

func TestDecide(t *testing.T) {
	d := Decide("where is the food pantry")
	assert.True(t, d.ShouldRoute)
	require.NotNil(t, d.Route)
	assert.Equal(t, "NourishNet", d.Route.AgentKey)
	assert.Contains(t, d.Reason, "NourishNet on PatriotAI")

	assert.Equal(t, Decision{}, Decide("how do I compost banana peels"))
}

func TestListDirectory(t *testing.T) {
	dir := ListDirectory()
	assert.Equal(t, PlatformName, dir.Platform)
	require.Len(t, dir.Agents, 4)
	assert.Equal(t, "CourseMate", dir.Agents[0].Key)
}
