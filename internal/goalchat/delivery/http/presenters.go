package http

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"pdca-planner/internal/goal"
	"pdca-planner/internal/goalchat"
	pkgErrors "pdca-planner/pkg/errors"
)

// ExtractedGoalHeader carries base64(JSON(goal)) on chat responses.
const ExtractedGoalHeader = "x-extracted-goal"

// --- Request DTOs ---

type messageReq struct {
	ID      string `json:"id"`
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content"`
}

type chatReq struct {
	UserID   string       `json:"userId"`
	Messages []messageReq `json:"messages" binding:"dive"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return goalchat.ErrUserIDRequired
	}
	if len(r.Messages) == 0 {
		return goalchat.ErrEmptyMessages
	}
	return nil
}

func (r chatReq) toInput() goalchat.ChatInput {
	messages := make([]goalchat.Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = goalchat.Message{ID: m.ID, Role: m.Role, Content: m.Content}
	}
	return goalchat.ChatInput{
		UserID:   r.UserID,
		Messages: messages,
	}
}

// ---

type extractReq struct {
	UserInput      string `json:"userInput"`
	AssistantReply string `json:"assistantReply"`
}

func (r extractReq) validate() error {
	if r.UserInput == "" && r.AssistantReply == "" {
		return pkgErrors.NewHTTPError(400, "userInput or assistantReply is required")
	}
	return nil
}

func (r extractReq) toInput() goalchat.ExtractInput {
	return goalchat.ExtractInput{
		UserInput:      r.UserInput,
		AssistantReply: r.AssistantReply,
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newChatResp(o goalchat.ChatOutput) chatResp {
	return chatResp{
		Messages: []messageResp{{
			ID:      o.Reply.ID,
			Role:    o.Reply.Role,
			Content: o.Reply.Content,
		}},
	}
}

type extractResp struct {
	Found bool                 `json:"found"`
	Goal  *goal.StructuredGoal `json:"goal"`
}

func (h *handler) newExtractResp(o goalchat.ExtractOutput) extractResp {
	return extractResp{
		Found: o.Found,
		Goal:  o.Goal,
	}
}

// encodeGoalHeader renders a goal as base64 encoded JSON.
func encodeGoalHeader(g *goal.StructuredGoal) (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
