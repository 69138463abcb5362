package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"arenasim/internal/combat"
	"arenasim/internal/config"
	"arenasim/internal/replay"
	"arenasim/internal/report"
	"arenasim/internal/score"
	"arenasim/internal/util"
)

func main() {
	var cfgDir, out, teamsOut, dsn string
	var seed int64
	var n int
	var showReplay, runScore bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "battle_log.json", "battle log file (single) or summary file (batch)")
	flag.StringVar(&teamsOut, "teams", "teams.json", "team info file")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.BoolVar(&showReplay, "replay", true, "print console replay when n==1")
	flag.BoolVar(&runScore, "score", false, "score the finished battle when n==1")
	flag.StringVar(&dsn, "dsn", "", "optional postgres dsn for battle report storage")
	flag.Parse()

	cfg, err := config.LoadAll(cfgDir)
	if err != nil {
		panic(err)
	}

	if n <= 1 {
		teamA, teamB, err := combat.BuildSquads(cfg)
		if err != nil {
			panic(err)
		}
		eng := combat.NewEngine(teamA, teamB, util.New(seed))
		eng.Run()

		logJSON := combat.MarshalPretty(eng.Log())
		if err := os.WriteFile(out, logJSON, 0644); err != nil {
			panic(err)
		}
		teamsJSON := combat.MarshalPretty(combat.TeamInfos(teamA, teamB))
		if err := os.WriteFile(teamsOut, teamsJSON, 0644); err != nil {
			panic(err)
		}

		if showReplay {
			fmt.Println("===== BATTLE REPLAY =====")
			replay.Write(os.Stdout, eng.Log())
		}
		if runScore {
			entries, err := score.ParseLog(logJSON)
			if err != nil {
				panic(err)
			}
			teams, err := score.ParseTeams(teamsJSON)
			if err != nil {
				panic(err)
			}
			sc := score.NewEngine(score.NewLibrary(), teamA.TeamID, teamB.TeamID, rosterNames(teamA))
			totals := sc.Score(entries, teams)
			fmt.Println("===== FINAL STRATEGY SCORES =====")
			fmt.Printf("%s: %d\n", teamA.TeamID, totals[teamA.TeamID])
			fmt.Printf("%s: %d\n", teamB.TeamID, totals[teamB.TeamID])
		}
		if dsn != "" {
			if err := persist(dsn, eng, seed, logJSON, teamsJSON); err != nil {
				panic(err)
			}
		}
		fmt.Printf("Battle %s finished after %d turns: %s -> %s, %s\n",
			eng.BattleID, eng.FinalTurn(), eng.Result(), out, teamsOut)
		return
	}

	type stat struct {
		Wins      map[string]int
		Draws     int
		TurnLimit int
		SumTurns  int
	}
	st := stat{Wins: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := 8
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				teamA, teamB, err := combat.BuildSquads(cfg)
				if err != nil {
					panic(err)
				}
				eng := combat.NewEngine(teamA, teamB, util.New(seed+int64(i)*7919))
				eng.Run()
				res := eng.Result()

				mu.Lock()
				switch {
				case strings.HasPrefix(res, "Draw"):
					st.Draws++
				case strings.HasPrefix(res, "Turn limit"):
					st.TurnLimit++
				case teamA.Defeated():
					st.Wins[teamB.TeamID]++
				default:
					st.Wins[teamA.TeamID]++
				}
				st.SumTurns += eng.FinalTurn()
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := map[string]any{
		"runs":       n,
		"wins":       st.Wins,
		"draws":      st.Draws,
		"turn_limit": st.TurnLimit,
		"avg_turns":  float64(st.SumTurns) / float64(n),
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}

func rosterNames(s *combat.Squad) []string {
	names := make([]string, len(s.Members))
	for i, c := range s.Members {
		names[i] = c.Name
	}
	return names
}

func persist(dsn string, eng *combat.Engine, seed int64, logJSON, teamsJSON []byte) error {
	st, err := report.Open(dsn)
	if err != nil {
		return err
	}
	defer st.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	return st.Save(ctx, &report.Report{
		BattleID:  eng.BattleID,
		Seed:      seed,
		Result:    eng.Result(),
		FinalTurn: eng.FinalTurn(),
		Log:       logJSON,
		Teams:     teamsJSON,
	})
}
