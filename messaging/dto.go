// Package messaging, as part of the messaging module.
// This file, `dto.go`, defines the request and response shapes of the
// messaging endpoints.
package messaging

// SendMessageRequest is the payload for sending a message.
type SendMessageRequest struct {
	Text string `json:"text" example:"See you at 8!"`
}

// ConversationSummary is the list view of a conversation: display fields plus
// a preview of the most recent message.
type ConversationSummary struct {
	ID              string `json:"id"`
	Participant     string `json:"participant"`
	ParticipantName string `json:"participant_name"`
	Avatar          string `json:"avatar"`
	LastMessage     string `json:"last_message,omitempty"`
	MessageCount    int    `json:"message_count"`
}

// ConversationsResponse wraps the conversation list view.
type ConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

// summarize projects a conversation into its list view.
func summarize(c *Conversation) ConversationSummary {
	summary := ConversationSummary{
		ID:              c.ID,
		Participant:     c.Participant,
		ParticipantName: c.ParticipantName,
		Avatar:          c.Avatar,
		MessageCount:    len(c.Messages),
	}
	if last := c.lastMessage(); last != nil {
		summary.LastMessage = last.Text
	}
	return summary
}
