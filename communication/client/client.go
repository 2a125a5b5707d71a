package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wolfhunt/communication"
	"wolfhunt/game"
	"wolfhunt/searcher/agent"

	"github.com/rs/zerolog/log"
)

type remoteAgent struct {
	serverURL  string
	difficulty agent.Difficulty
	client     *http.Client
}

// NewRemoteAgent returns an agent that asks the agent server at serverURL for
// its moves. Any failure along the way is reported as no move.
func NewRemoteAgent(serverURL string, difficulty agent.Difficulty) agent.Agent {
	return &remoteAgent{
		serverURL:  strings.TrimRight(serverURL, "/"),
		difficulty: difficulty,
		client:     &http.Client{},
	}
}

func (a *remoteAgent) FindMove(ctx context.Context, state *game.GameState) agent.Decision {
	resp, err := a.requestMove(ctx, state)
	if err != nil {
		log.Warn().Msgf("remote agent for %s: %v", state.Turn, err)
		return agent.Decision{}
	}
	if !resp.Found || resp.Move == nil {
		return agent.Decision{}
	}
	return agent.Decision{Move: *resp.Move, OK: true}
}

func (a *remoteAgent) requestMove(ctx context.Context, state *game.GameState) (*communication.FindMoveResponse, error) {
	difficulty := a.difficulty
	payload, err := json.Marshal(communication.FindMoveRequest{
		Board:      state.Board,
		Role:       state.Turn,
		Difficulty: &difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.serverURL+communication.FindMovePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&e)
		return nil, fmt.Errorf("server returned %s: %s", res.Status, e.Error)
	}

	var resp communication.FindMoveResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}
