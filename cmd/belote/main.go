package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"belote/ai"
	"belote/config"
	"belote/game"
	"belote/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3fb950"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 1)
)

type result struct {
	game   game.Game
	rounds int
	err    error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	games := flag.Int("games", cfg.Games, "Number of games to simulate")
	target := flag.Int("target", cfg.TargetScore, "Target score to win")
	seed := flag.Int64("seed", cfg.Seed, "Seed for shuffles and identifiers (0 = random)")
	maxRounds := flag.Int("max-rounds", cfg.MaxRounds, "Give up on a game after this many rounds (0 = no limit)")
	level := flag.String("log-level", cfg.LogLevel.String(), "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.Games, cfg.TargetScore, cfg.Seed, cfg.MaxRounds = *games, *target, *seed, *maxRounds
	if cfg.LogLevel, err = log.ParseLevel(*level); err != nil {
		log.Fatal("Invalid log level", "level", *level, "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Level: cfg.LogLevel})
	logger.Info("Starting simulation", "games", cfg.Games, "target", cfg.TargetScore, "seed", cfg.Seed)

	results := make([]result, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		results = append(results, play(cfg, cfg.Seed+int64(i), logger.With("table", i+1)))
	}

	fmt.Println(summary(results))
	for _, r := range results {
		if r.err != nil && !errors.Is(r.err, table.ErrRoundLimit) {
			os.Exit(1)
		}
	}
}

func play(cfg config.Config, seed int64, logger *log.Logger) result {
	tbl, _, err := table.New(table.Options{
		TargetScore: cfg.TargetScore,
		Names:       [4]string{"North", "East", "South", "West"},
		IDs:         game.NewSeededIDs(seed),
		Source:      game.NewSeededSource(seed),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to open table", "err", err)
		return result{err: err}
	}

	agents := [4]ai.Agent{
		ai.NewHeuristic("north"),
		ai.NewHeuristic("east"),
		ai.NewHeuristic("south"),
		ai.NewHeuristic("west"),
	}
	_, err = tbl.Autoplay(agents, cfg.MaxRounds)
	if err != nil {
		logger.Warn("Game stopped", "err", err)
	}
	g := tbl.Game()
	return result{game: g, rounds: len(g.Rounds), err: err}
}

func summary(results []result) string {
	teamNames := [2]string{"North-South", "East-West"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Belote simulation") + "\n")

	wins := [2]int{}
	for i, r := range results {
		line := fmt.Sprintf("Game %d  ", i+1)
		switch {
		case r.err != nil && r.game.ID == "":
			line += subtleStyle.Render("failed: " + r.err.Error())
		case r.game.WinnerTeam != nil:
			w := *r.game.WinnerTeam
			wins[w]++
			line += winStyle.Render(teamNames[w]+" win") +
				fmt.Sprintf("  %d - %d  ", r.game.Scores[0], r.game.Scores[1]) +
				subtleStyle.Render(fmt.Sprintf("(%d rounds)", r.rounds))
		default:
			line += subtleStyle.Render(fmt.Sprintf("no winner after %d rounds  %d - %d",
				r.rounds, r.game.Scores[0], r.game.Scores[1]))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s %d   %s %d", teamNames[0], wins[0], teamNames[1], wins[1]))
	return boxStyle.Render(b.String())
}
