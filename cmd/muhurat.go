package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopanchang/jyotish/internal/muhurat"
)

var muhuratCmd = &cobra.Command{
	Use:   "muhurat",
	Short: "Search a date range for favorable windows",
	Long: `Scores each day's morning, Abhijit and afternoon windows against the
activity's rule table and prints the survivors ranked by score.

With --follow, the search re-runs whenever the --rules file changes.`,
	RunE: runMuhurat,
}

func init() {
	muhuratCmd.Flags().String("activity", "", "activity id, e.g. marriage (required)")
	muhuratCmd.Flags().String("from", "", "first date to consider, YYYY-MM-DD (required)")
	muhuratCmd.Flags().Int("days", 30, "number of days to search")
	muhuratCmd.Flags().Float64("min-score", 0, "drop candidates below this score")
	muhuratCmd.Flags().Int("limit", 10, "print at most this many candidates")
	muhuratCmd.Flags().String("rules", "", "TOML rule table replacing the built-in rules")
	muhuratCmd.Flags().BoolP("follow", "f", false, "re-run when the rules file changes")
	muhuratCmd.MarkFlagRequired("activity")
	muhuratCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(muhuratCmd)
}

func runMuhurat(cmd *cobra.Command, _ []string) error {
	activity, _ := cmd.Flags().GetString("activity")
	from, _ := cmd.Flags().GetString("from")
	days, _ := cmd.Flags().GetInt("days")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	limit, _ := cmd.Flags().GetInt("limit")
	rulesPath, _ := cmd.Flags().GetString("rules")
	follow, _ := cmd.Flags().GetBool("follow")

	year, month, day, err := parseDate(from)
	if err != nil {
		return err
	}
	lat, lon, tz := location(cmd)
	q := muhurat.Query{
		StartYear: year, StartMonth: month, StartDay: day,
		Days:     days,
		Latitude: lat, Longitude: lon, UTCOffset: tz,
		MinScore: minScore,
	}

	var rules map[string]muhurat.Rule // nil selects the built-in table
	if rulesPath != "" {
		if rules, err = muhurat.LoadRules(rulesPath); err != nil {
			return err
		}
	}

	if err := searchAndPrint(cmd, q, rules, activity, limit); err != nil {
		return err
	}
	if !follow {
		return nil
	}
	if rulesPath == "" {
		return fmt.Errorf("--follow needs --rules")
	}

	watcher, err := muhurat.NewWatcher(rulesPath)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Fprintf(cmd.OutOrStdout(), "\nwatching %s (interrupt to stop)\n", rulesPath)
	for {
		select {
		case change := <-watcher.Changes:
			if change.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "rules reload failed: %v\n", change.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nrules reloaded from %s\n", change.Path)
			if err := searchAndPrint(cmd, q, change.Reloaded, activity, limit); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "search failed: %v\n", err)
			}
		case <-interrupt:
			return nil
		}
	}
}

func searchAndPrint(cmd *cobra.Command, q muhurat.Query, rules map[string]muhurat.Rule, activity string, limit int) error {
	rule, err := muhurat.Lookup(rules, activity)
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(muhurat.Activities(rules), ", "))
	}

	candidates, err := muhurat.Search(q, rule, ayanamsaModel())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(candidates) == 0 {
		fmt.Fprintf(out, "no %s muhurat found in %d days from %04d-%02d-%02d\n",
			activity, q.Days, q.StartYear, q.StartMonth, q.StartDay)
		return nil
	}

	fmt.Fprintf(out, "%-12s %-11s %-12s %6s  %-9s %s\n",
		"Date", "Window", "Slot", "Score", "Quality", "Notes")
	for i, c := range candidates {
		if i >= limit {
			break
		}
		notes := joinNotes(c)
		fmt.Fprintf(out, "%04d-%02d-%02d   %-11s %-12s %6.1f  %-9s %s\n",
			c.Year, c.Month, c.Day, c.Window, c.Label, c.Score.Total, c.Score.Quality, notes)
	}
	return nil
}

func joinNotes(c muhurat.Candidate) string {
	var notes []string
	if c.Score.InAbhijit {
		notes = append(notes, "abhijit")
	}
	for _, w := range c.Score.Warnings {
		notes = append(notes, "in "+w)
	}
	notes = append(notes, fmt.Sprintf("%s, %s", c.Snapshot.Tithi, c.Snapshot.Nakshatra.Name))
	return strings.Join(notes, "; ")
}
