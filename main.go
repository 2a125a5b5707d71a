package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wolfhunt/communication/client"
	"wolfhunt/communication/server"
	"wolfhunt/engine"
	"wolfhunt/experiments"
	"wolfhunt/game"
	"wolfhunt/gamemaster"
	"wolfhunt/meta"
	"wolfhunt/player"
	"wolfhunt/searcher"
	"wolfhunt/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, selfplay, experiment, serve")
	role := flag.String("role", "hunter", "Side the human plays in play mode")
	level := flag.String("difficulty", "normal", "Computer strength: easy, normal or hard")
	port := flag.String("port", meta.DefaultPort, "Port of the agent server in serve mode")
	remote := flag.String("remote", "", "Agent server URL the wolves ask for moves in selfplay mode")
	experiment := flag.String("experiment", "baseline", "Experiment to run: baseline or difficulty")
	out := flag.String("out", "experiments", "Directory experiment results are written to")
	verbose := flag.Bool("verbose", false, "Log every search iteration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	difficulty, err := agent.ParseDifficulty(*level)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, *role, difficulty)
	case "selfplay":
		err = selfPlay(ctx, difficulty, *remote)
	case "experiment":
		err = runExperiment(ctx, *experiment, *out)
	case "serve":
		err = server.NewAgentServer(newDriver()).ListenAndServe(ctx, ":"+*port)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Msgf("%s: %v", *mode, err)
	}
}

func newDriver() *searcher.Driver {
	return searcher.NewDriver(searcher.New(searcher.WithWolfSafety(true), searcher.WithMetrics()))
}

func play(ctx context.Context, side string, difficulty agent.Difficulty) error {
	role, err := game.ParseRole(side)
	if err != nil {
		return err
	}
	session := gamemaster.NewSession(newDriver(), difficulty)
	if err := session.SetPlayerRole(role); err != nil {
		return err
	}
	return player.NewTerminalController(session, os.Stdin, os.Stdout).Run(ctx)
}

func selfPlay(ctx context.Context, difficulty agent.Difficulty, remote string) error {
	hunter := agent.NewSearchAgent(newDriver(), difficulty)
	wolf := agent.NewSearchAgent(newDriver(), difficulty)
	if remote != "" {
		wolf = client.NewRemoteAgent(remote, difficulty)
	}

	e := engine.LocalEngine(hunter, wolf)
	winner, gameMetric, _ := e.Run(ctx)
	fmt.Printf("%s\nwinner: %s (%s) after %d plies in %s\n", e.State.Board, winner, gameMetric.Reason, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}

func runExperiment(ctx context.Context, name, out string) error {
	var exp experiments.Experiment
	switch name {
	case "baseline":
		exp = experiments.BaselineExperiment()
	case "difficulty":
		exp = experiments.DifficultyExperiment()
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	dir, err := experiments.Run(ctx, exp, out)
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}
