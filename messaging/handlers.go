// Package messaging, as part of the messaging module.
// This file, `handlers.go`, handles HTTP requests for conversations and
// message sending.
package messaging

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
)

// MessagingHandlers provides HTTP handlers for messaging.
type MessagingHandlers struct {
	service *MessagingService
}

// NewMessagingHandlers creates new MessagingHandlers.
func NewMessagingHandlers(service *MessagingService) *MessagingHandlers {
	return &MessagingHandlers{service: service}
}

// RegisterRoutes registers the messaging routes. The group is mounted behind
// the JWT middleware.
func (h *MessagingHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.listConversations)
	router.Get("/{conversationID}", h.getConversation)
	router.Post("/{conversationID}", h.sendMessage)
}

// listConversations godoc
// @Summary List conversations
// @Description Returns the conversation list with a preview of each thread's most recent message.
// @Tags Messaging
// @Produce json
// @Security BearerAuth
// @Success 200 {object} messaging.ConversationsResponse "The conversation list"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/messages [get]
func (h *MessagingHandlers) listConversations(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.Conversations()
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	summaries := make([]ConversationSummary, 0, len(all))
	for i := range all {
		summaries = append(summaries, summarize(&all[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ConversationsResponse{Conversations: summaries})
}

// getConversation godoc
// @Summary Get a conversation
// @Description Returns a single conversation with its full message history.
// @Tags Messaging
// @Produce json
// @Security BearerAuth
// @Param conversationID path string true "Conversation ID"
// @Success 200 {object} messaging.Conversation "The conversation"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Conversation not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/messages/{conversationID} [get]
func (h *MessagingHandlers) getConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.GetConversation(chi.URLParam(r, "conversationID"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(conv)
}

// sendMessage godoc
// @Summary Send a message
// @Description Appends a message to the conversation and schedules a simulated reply after a fixed delay.
// @Tags Messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conversationID path string true "Conversation ID"
// @Param messageBody body messaging.SendMessageRequest true "Message text"
// @Success 201 {object} messaging.Message "The stored message"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Empty message"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Conversation not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/messages/{conversationID} [post]
func (h *MessagingHandlers) sendMessage(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	var req SendMessageRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request payload", err))
		return
	}
	defer r.Body.Close()

	message, err := h.service.SendMessage(chi.URLParam(r, "conversationID"), username, req.Text)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(message)
}
