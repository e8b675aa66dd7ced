package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"gridbattle/internal/combat"
	"gridbattle/internal/config"
	"gridbattle/internal/util"
)

func main() {
	var cfgPath, inPath, out, gen string
	var seed int64
	var part, units int
	var saveLog, trace, verbose, jsonLog bool
	flag.StringVar(&cfgPath, "config", "assets/battle.yaml", "battle config (empty for defaults)")
	flag.StringVar(&inPath, "input", "assets/example.txt", "arena file, - for stdin")
	flag.StringVar(&out, "out", "out.json", "report file")
	flag.StringVar(&gen, "gen", "", "generate a random WxH arena instead of reading -input")
	flag.Int64Var(&seed, "seed", 12345, "seed for -gen")
	flag.IntVar(&units, "units", 8, "units placed by -gen")
	flag.IntVar(&part, "part", 0, "1 = plain battle, 2 = attack power search, 0 = both")
	flag.BoolVar(&saveLog, "log", false, "save the part 1 event log in the report")
	flag.BoolVar(&trace, "trace", false, "include round boards in the event log")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&jsonLog, "json", false, "log as JSON")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if jsonLog {
		log.SetFormatter(&log.JSONFormatter{})
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	input, src, err := readArena(inPath, gen, seed, units)
	if err != nil {
		log.WithError(err).Fatal("arena")
	}
	log.WithFields(log.Fields{"source": src, "hit_points": cfg.HitPoints, "max_rounds": cfg.MaxRounds}).Debug("arena loaded")

	report := map[string]any{"source": src, "arena": input}
	if part == 0 || part == 1 {
		res, err := combat.Simulate(input, combat.RulesFromConfig(cfg), combat.Options{
			MaxRounds: cfg.MaxRounds, Record: saveLog, Trace: saveLog && trace,
		})
		if err != nil {
			log.WithError(err).Fatal("part 1")
		}
		report["part1"] = res
		fmt.Printf("Part 1: outcome=%d rounds=%d hp=%d winner=%s %s\n", res.Outcome, res.Rounds, res.HPLeft, res.Winner, res.Summary())
	}
	if part == 0 || part == 2 {
		s, err := combat.SearchFromConfig(cfg, input, log.StandardLogger())
		if err != nil {
			log.WithError(err).Fatal("part 2")
		}
		sr, err := s.Run()
		if err != nil {
			log.WithError(err).Fatal("part 2")
		}
		report["part2"] = sr
		fmt.Printf("Part 2: outcome=%d %s power=%d attempts=%d\n", sr.Result.Outcome, sr.Species, sr.Power, sr.Attempts)
	}

	if err := os.WriteFile(out, combat.MarshalPretty(report), 0644); err != nil {
		log.WithError(err).Fatal("write report")
	}
	log.Infof("report -> %s", filepath.Base(out))
}

func readArena(path, gen string, seed int64, units int) (string, string, error) {
	if gen != "" {
		var w, h int
		if _, err := fmt.Sscanf(gen, "%dx%d", &w, &h); err != nil {
			return "", "", fmt.Errorf("bad -gen %q: %w", gen, err)
		}
		return combat.RandomArena(util.NewRand(seed), w, h, units), fmt.Sprintf("random %dx%d seed=%d", w, h, seed), nil
	}
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", err
	}
	return string(b), path, nil
}
