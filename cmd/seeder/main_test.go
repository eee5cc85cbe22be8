package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlayerIDDeterministic(t *testing.T) {
	a := playerID("FR-1042")
	b := playerID("FR-1042")
	c := playerID("FR-1043")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}

func TestReadPlayers(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "players.csv",
		"player_key,name,birth_year,bats,throws,position,class\n"+
			"FR-1042,Ramon Vega,1999,R,R,SP,pitcher\n"+
			"FR-2001,Chet Hollis,2003,L,L,CF,batter\n")

	players, err := readPlayers(path)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, playerID("FR-1042"), players[0].ID)
	assert.Equal(t, "Ramon Vega", players[0].Name)
	assert.Equal(t, 1999, players[0].BirthYear)
	assert.Equal(t, models.ClassPitcher, players[0].Class)
	assert.Equal(t, models.ClassBatter, players[1].Class)
}

func TestReadPlayersRejectsUnknownClass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "players.csv",
		"player_key,name,birth_year,bats,throws,position,class\n"+
			"FR-1042,Ramon Vega,1999,R,R,SP,catcher\n")

	_, err := readPlayers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown class")
}

func TestReadPitchingParsesInningsThirds(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pitching.csv",
		"player_key,year,age,level,ip,batters_faced,so,bb,hr,h,gs,gr\n"+
			"FR-1042,2025,26,mlb,182.1,744,201,48,19,155,31,0\n"+
			"FR-1042,2024,25,aaa,60.2,255,77,20,4,48,11,3\n")

	lines, err := readPitching(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.InDelta(t, 182.333, float64(lines[0].IP), 0.001)
	assert.Equal(t, "182.1", lines[0].IP.String())
	assert.Equal(t, uint32(201), lines[0].PitchSO)
	assert.Equal(t, models.ClassPitcher, lines[0].Class)
	assert.Equal(t, 2024, lines[1].Year)
	assert.InDelta(t, 60.667, float64(lines[1].IP), 0.001)
}

func TestReadBatting(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batting.csv",
		"player_key,year,age,level,pa,h,double,triple,hr,bb,so\n"+
			"FR-2001,2025,22,mlb,612,158,31,4,27,70,121\n")

	lines, err := readBatting(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, playerID("FR-2001"), lines[0].PlayerID)
	assert.Equal(t, uint32(612), lines[0].PA)
	assert.Equal(t, uint32(27), lines[0].HR)
	assert.Equal(t, models.ClassBatter, lines[0].Class)
}

func TestReadSeasonsMissingFilesSkipped(t *testing.T) {
	dir := t.TempDir()

	lines, err := readSeasons(dir, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadScoutingClampsGrades(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scouting.csv",
		"player_key,source,report_date,stuff_now,stuff_pot,movement_now,movement_pot,control_now,control_pot,"+
			"contact_now,contact_pot,gap_now,gap_pot,power_now,power_pot,eye_now,eye_pot,avoidk_now,avoidk_pot,"+
			"speed_now,speed_pot,durability,injury_prone\n"+
			"FR-1042,internal,2026-03-15,95,99,55,60,45,55,20,20,20,20,20,20,20,20,20,20,20,20,50,durable\n")

	reports, err := readScouting(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, playerID("FR-1042"), r.PlayerID)
	assert.Equal(t, "2026-03-15", r.ReportDate.Format("2006-01-02"))
	assert.Equal(t, 80.0, r.Stuff.Now)
	assert.Equal(t, 80.0, r.Stuff.Potential)
	assert.Equal(t, 55.0, r.Movement.Now)
	assert.Equal(t, models.InjuryDurable, r.InjuryProne)
}

func TestReadScoutingMissingFileSkipped(t *testing.T) {
	reports, err := readScouting(filepath.Join(t.TempDir(), "scouting.csv"), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Nil(t, reports)
}

func TestOpenCSVRejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "players.csv",
		"key,name,birth_year,bats,throws,position,class\n")

	_, _, err := openCSV(path, playersHeader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column 0 is "key"`)
}
