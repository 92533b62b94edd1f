// Package samplegen produces synthetic roster and score spreadsheets for
// manual testing of the import and reconciliation jobs. The roster output
// deliberately exercises the messy shapes real exports have: grouped member
// rows with blank team ids, mixed header spellings and zero-padded codes.
package samplegen

import (
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
)

// File permission constant for generated files.
const filePermission = 0o600

var firstNames = []string{
	"Aarav", "Diya", "Ishaan", "Meera", "Rohan", "Sana",
	"Kabir", "Anaya", "Vivaan", "Zara", "Arjun", "Nisha",
}

var teamWords = []string{
	"Quantum", "Rocket", "Cipher", "Nova", "Falcon", "Ember",
	"Vertex", "Drift", "Pixel", "Stellar",
}

func pick(list []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[n.Int64()]
}

func randomScore() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000))
	return float64(n.Int64()) / 10
}

// WriteRoster writes a roster CSV with numTeams teams of membersPerTeam rows
// each. Only the first row of a team carries the team id; the rest rely on
// carry-forward. The first member doubles as the leader.
func WriteRoster(path string, numTeams, membersPerTeam int) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("creating roster file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"TeamId", "Team Name", "Members", "Team Leader", "Email", "Phone Number", "College/University", "Year"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 1; i <= numTeams; i++ {
		teamID := fmt.Sprintf("TYDT-%03d", i)
		teamName := pick(teamWords) + " " + pick(teamWords)
		leader := pick(firstNames) + " " + pick(firstNames)

		for m := 0; m < membersPerTeam; m++ {
			name := leader
			if m > 0 {
				name = pick(firstNames) + " " + pick(firstNames)
			}
			record := []string{
				"", "", name, leader,
				fmt.Sprintf("%s.%d.%d@example.edu", teamID, i, m),
				fmt.Sprintf("98%08d", i*100+m),
				"Sample Institute of Technology",
				"3",
			}
			if m == 0 {
				record[0] = teamID
				record[1] = teamName
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("writing roster row: %w", err)
			}
		}
	}
	return nil
}

// WriteScores writes a score CSV covering numTeams teams, alternating
// identifier shapes (full code, bare padded number, bare integer) to
// exercise the resolver cascade.
func WriteScores(path string, numTeams int) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("creating score file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Team ID", "Score"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := 1; i <= numTeams; i++ {
		var id string
		switch i % 3 {
		case 0:
			id = fmt.Sprintf("TYDT-%03d", i)
		case 1:
			id = fmt.Sprintf("%03d", i)
		default:
			id = fmt.Sprintf("%d", i)
		}
		record := []string{id, fmt.Sprintf("%.1f", randomScore())}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing score row: %w", err)
		}
	}
	return nil
}
