package experiments

import (
	"context"
	"fmt"

	"wolfhunt/engine"
	"wolfhunt/experiments/metrics"
	"wolfhunt/meta"
	"wolfhunt/searcher"
	"wolfhunt/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type MatchUp struct {
	Hunter metrics.AgentConfig
	Wolf   metrics.AgentConfig
}

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
	Games    int // Per match up
}

var (
	baseline = metrics.AgentConfig{ID: 0, Random: true, Seed: 1}
	easy     = metrics.AgentConfig{ID: 1, Difficulty: "easy"}
	normal   = metrics.AgentConfig{ID: 2, Difficulty: "normal"}
	hard     = metrics.AgentConfig{ID: 3, Difficulty: "hard"}
)

// BaselineExperiment pits every difficulty against the random mover on both
// sides.
func BaselineExperiment() Experiment {
	exp := Experiment{
		Name:    "baseline",
		Configs: []metrics.AgentConfig{baseline, easy, normal, hard},
		Games:   meta.NumGames,
	}
	for _, config := range []metrics.AgentConfig{easy, normal, hard} {
		exp.MatchUps = append(exp.MatchUps,
			MatchUp{Hunter: config, Wolf: baseline},
			MatchUp{Hunter: baseline, Wolf: config},
		)
	}
	return exp
}

// DifficultyExperiment plays every pair of difficulties against each other.
func DifficultyExperiment() Experiment {
	tiers := []metrics.AgentConfig{easy, normal, hard}
	exp := Experiment{
		Name:    "difficulty",
		Configs: tiers,
		Games:   meta.NumGames,
	}
	for _, hunter := range tiers {
		for _, wolf := range tiers {
			exp.MatchUps = append(exp.MatchUps, MatchUp{Hunter: hunter, Wolf: wolf})
		}
	}
	return exp
}

type gameResult struct {
	matchUp     MatchUp
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays all games of exp, a few at a time, and writes the results under
// root. It returns the directory written to.
func Run(ctx context.Context, exp Experiment, root string) (string, error) {
	log.Info().Msgf("starting %s experiment...", exp.Name)

	results := make([]gameResult, len(exp.MatchUps)*exp.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.GoRoutines)

	for mi, matchUp := range exp.MatchUps {
		mi, matchUp := mi, matchUp
		for i := 0; i < exp.Games; i++ {
			i := i
			slot := mi*exp.Games + i
			g.Go(func() error {
				hunter, err := createAgent(matchUp.Hunter, slot)
				if err != nil {
					return err
				}
				wolf, err := createAgent(matchUp.Wolf, slot)
				if err != nil {
					return err
				}

				winner, gameMetric, moveMetrics := engine.LocalEngine(hunter, wolf).Run(ctx)
				results[slot] = gameResult{matchUp, gameMetric, moveMetrics}
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s (%s)",
					mi+1, len(exp.MatchUps), i+1, exp.Games, winner, gameMetric.Reason)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%s experiment: %w", exp.Name, err)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, res := range results {
		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Hunter:     res.matchUp.Hunter.ID,
			Wolf:       res.matchUp.Wolf.ID,
			GameMetric: res.gameMetric,
		})
		for _, mm := range res.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d game records and %d move records in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// createAgent builds a fresh agent for one game. Random agents are seeded per
// game so the games of a match up differ.
func createAgent(config metrics.AgentConfig, game int) (agent.Agent, error) {
	if config.Random {
		return agent.NewRandomAgent(config.Seed + uint64(game)), nil
	}
	difficulty, err := agent.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	s := searcher.New(searcher.WithMetrics(), searcher.WithWolfSafety(true))
	return agent.NewSearchAgent(searcher.NewDriver(s), difficulty), nil
}
