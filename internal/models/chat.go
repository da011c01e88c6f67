package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

type ChatResponse struct {
	Reply            string  `json:"reply"`
	RouteToPatriotAI bool    `json:"route_to_patriotai"`
	PatriotAIAgent   *string `json:"patriotai_agent"`
	PatriotAIReason  *string `json:"patriotai_reason"`
}

// VoiceChatResponse adds the recognized transcript to a chat reply.
type VoiceChatResponse struct {
	Transcript string `json:"transcript"`
	ChatResponse
}

type VoiceRequest struct {
	Text string `json:"text"`
}

type TipResponse struct {
	Tip string `json:"tip"`
}
