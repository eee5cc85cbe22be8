// Command tracerate computes one player's rating against live backends
// and prints every intermediate value the pipeline records. It answers
// "why is this player a 42" without attaching a debugger to the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

func main() {
	player := flag.String("player", "", "player UUID (required)")
	mode := flag.String("mode", "tr", "tr or tfr")
	year := flag.Int("year", 0, "season year, defaults to the current year")
	stageName := flag.String("stage", "", "preseason, early, mid, late or complete; defaults from the current month")
	revision := flag.String("revision", "", "params revision, defaults to the latest")
	flag.Parse()

	if *player == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *mode != string(rating.ModeTR) && *mode != string(rating.ModeTFR) {
		log.Fatalf("unknown mode %q, want tr or tfr", *mode)
	}

	now := time.Now().UTC()
	if *year == 0 {
		*year = now.Year()
	}
	stage := rating.StageForMonth(now.Month())
	if *stageName != "" {
		var err error
		if stage, err = rating.ParseStage(*stageName); err != nil {
			log.Fatal(err)
		}
	}

	rev := *revision
	if rev == "" {
		rev = rating.LatestRevision
	}
	params, ok := rating.ParamsFor(rev)
	if !ok {
		log.Fatalf("unknown revision %q", rev)
	}

	ctx := context.Background()

	ch, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{getenv("CLICKHOUSE_ADDR", "localhost:9000")},
		Auth: clickhouse.Auth{
			Database: getenv("CLICKHOUSE_DB", "hardball"),
			Username: getenv("CLICKHOUSE_USER", "default"),
			Password: os.Getenv("CLICKHOUSE_PASSWORD"),
		},
	})
	if err != nil {
		log.Fatalf("clickhouse: %v", err)
	}
	defer ch.Close()

	pg, err := pgxpool.New(ctx, getenv("POSTGRES_DSN", "postgres://localhost:5432/hardball"))
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pg.Close()

	players := logic.NewPlayerService(pg, ch)
	scouting := logic.NewScoutingService(pg)
	dists := logic.NewDistributionService(ch, params)
	svc := logic.NewRatingService(players, scouting, dists, rating.NewEngine(params), nil, 0)

	res, tr, err := svc.Trace(ctx, *player, rating.Mode(*mode), *year, stage)
	if err != nil {
		log.Fatalf("trace failed: %v", err)
	}

	fmt.Printf("%s  class=%s role=%s age=%d  %s %d/%s  rev %s\n",
		res.PlayerName, res.Class, res.Role, res.Age, res.Mode, res.AsOfYear, res.Stage, res.Revision)
	fmt.Printf("overall %.1f  percentile %.1f\n\n", res.Overall, res.OverallPercentile)

	for _, c := range res.Components {
		fmt.Printf("  %-10s grade %5.1f  rate %9.4f  pct %5.1f\n", c.Name, c.Grade, c.Rate, c.Percentile)
	}
	fmt.Println()

	switch res.Class {
	case models.ClassPitcher:
		fmt.Printf("  FIP %.2f  WAR %.2f  projected IP %.1f\n", res.Metrics.FIP, res.Metrics.WAR, res.Metrics.ProjectedIP)
		fmt.Printf("  effective IP %.1f  confidence %.2f\n", res.Sample.EffectiveIP, res.Sample.Confidence)
	case models.ClassBatter:
		fmt.Printf("  wOBA %.3f  WAR %.2f  projected PA %.0f\n", res.Metrics.WOBA, res.Metrics.WAR, res.Metrics.ProjectedPA)
		fmt.Printf("  effective PA %.0f  confidence %.2f\n", res.Sample.EffectivePA, res.Sample.Confidence)
	}
	fmt.Println()

	for _, line := range tr.Dump() {
		fmt.Println(line)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
