// Command chartgen renders SVG bar charts of the season-line corpus:
// rows per level and league strikeouts per year. A quick way to eyeball
// data volume and era drift after a seed without a dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

func main() {
	out := flag.String("out", "charts", "output directory for SVG files")
	flag.Parse()

	ctx := context.Background()
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{getenv("CLICKHOUSE_ADDR", "localhost:9000")},
		Auth: clickhouse.Auth{
			Database: getenv("CLICKHOUSE_DB", "hardball"),
			Username: getenv("CLICKHOUSE_USER", "default"),
			Password: os.Getenv("CLICKHOUSE_PASSWORD"),
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping ClickHouse: %v", err)
	}

	generateLevelVolume(ctx, conn, *out)
	generateStrikeoutClimate(ctx, conn, *out)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func generateLevelVolume(ctx context.Context, conn clickhouse.Conn, out string) {
	fmt.Println("Querying season lines per level...")
	rows, err := conn.Query(ctx, `
		SELECT level, count() as lines
		FROM hardball.player_seasons
		GROUP BY level
		ORDER BY lines DESC
	`)
	if err != nil {
		log.Printf("Failed to query level volume: %v", err)
		return
	}
	defer rows.Close()

	var labels []string
	var values []uint64
	var maxVal uint64

	for rows.Next() {
		var label string
		var val uint64
		if err := rows.Scan(&label, &val); err != nil {
			continue
		}
		labels = append(labels, label)
		values = append(values, val)
		if val > maxVal {
			maxVal = val
		}
	}

	if len(labels) == 0 {
		fmt.Println("No season lines found.")
		return
	}

	svg := generateBarChartSVG("Season Lines by Level", labels, values, maxVal, "#4a90e2")
	saveChart(out, "level_volume.svg", svg)
}

// generateStrikeoutClimate charts league MLB strikeouts per year. When a
// percentile looks off, the first question is whether the run environment
// moved under it.
func generateStrikeoutClimate(ctx context.Context, conn clickhouse.Conn, out string) {
	fmt.Println("Querying strikeout climate...")
	rows, err := conn.Query(ctx, `
		SELECT year, sum(pitch_so) as strikeouts
		FROM hardball.player_seasons
		WHERE level = 'mlb' AND class = 'pitcher'
		GROUP BY year
		ORDER BY year DESC
		LIMIT 10
	`)
	if err != nil {
		log.Printf("Failed to query strikeout climate: %v", err)
		return
	}
	defer rows.Close()

	var labels []string
	var values []uint64
	var maxVal uint64

	for rows.Next() {
		var year uint16
		var val uint64
		if err := rows.Scan(&year, &val); err != nil {
			continue
		}
		labels = append(labels, fmt.Sprintf("%d", year))
		values = append(values, val)
		if val > maxVal {
			maxVal = val
		}
	}

	if len(labels) == 0 {
		fmt.Println("No MLB pitching lines found.")
		return
	}

	svg := generateBarChartSVG("League Strikeouts by Year (MLB)", labels, values, maxVal, "#e74c3c")
	saveChart(out, "strikeout_climate.svg", svg)
}

func saveChart(dir, filename, svg string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Chart generated: %s\n", path)
}

func generateBarChartSVG(title string, labels []string, values []uint64, maxVal uint64, color string) string {
	width := 600
	height := 400
	padding := 50
	barWidth := (width - 2*padding) / len(labels)
	maxBarHeight := height - 2*padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height, width, height))

	// Background
	sb.WriteString(`<rect width="100%" height="100%" fill="#1a1a1a" />`)

	// Title
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="30" fill="white" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`, width/2, title))

	for i, val := range values {
		barHeight := 0
		if maxVal > 0 {
			barHeight = int((val * uint64(maxBarHeight)) / maxVal)
		}
		x := padding + i*barWidth
		y := height - padding - barHeight

		// Bar
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="4" />`, x+5, y, barWidth-10, barHeight, color))

		// Label (rotated)
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="white" font-family="Arial" font-size="12" text-anchor="end" transform="rotate(-45 %d %d)">%s</text>`, x+barWidth/2, height-padding+20, x+barWidth/2, height-padding+20, labels[i]))

		// Value on top
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="white" font-family="Arial" font-size="10" text-anchor="middle">%d</text>`, x+barWidth/2, y-5, val))
	}

	// X-axis
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="white" stroke-width="2" />`, padding, height-padding, width-padding, height-padding))

	sb.WriteString(`</svg>`)
	return sb.String()
}
