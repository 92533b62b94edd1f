// Command rostergen writes synthetic roster and score CSV files for manual
// testing of the upload endpoints.
package main

import (
	"flag"
	"os"

	"github.com/dexterix/rosterd/internal/samplegen"
)

// Default generation constants.
const (
	defaultTeams   = 25
	defaultMembers = 4
)

func main() {
	var (
		teams      = flag.Int("teams", defaultTeams, "Number of teams to generate")
		members    = flag.Int("members", defaultMembers, "Members per team, leader included")
		rosterFile = flag.String("roster", "sample_roster.csv", "Roster CSV output path")
		scoreFile  = flag.String("scores", "sample_scores.csv", "Score CSV output path")
	)
	flag.Parse()

	if err := samplegen.WriteRoster(*rosterFile, *teams, *members); err != nil {
		os.Stderr.WriteString("roster generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := samplegen.WriteScores(*scoreFile, *teams); err != nil {
		os.Stderr.WriteString("score generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	os.Stdout.WriteString("wrote " + *rosterFile + " and " + *scoreFile + "\n")
}
