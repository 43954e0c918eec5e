// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docdigest/internal/history"
	"github.com/pdiddy/docdigest/internal/pipeline"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and replay past digest runs",
	Long: `History reads the local run database written by analyze. Use list to see
recent runs and show to reprint a stored digest.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent digest runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a stored digest",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.PersistentFlags().String("history-dir", "", "history database directory (default: config history_dir or ./history)")
	historyListCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyListCmd.Flags().Bool("json", false, "output as JSON")
	historyShowCmd.Flags().Bool("table", false, "print as a table instead of JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history_dir")
	}
	if dir == "" {
		dir = "history"
	}
	return history.NewStore(dir)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-25s  %-30s  %-5s  %-8s  %s\n",
		"ID", "Persona", "Job", "Docs", "Sections", "When")
	for _, r := range runs {
		persona := truncate(r.Persona, 25)
		job := truncate(r.Job, 30)
		fmt.Printf("%-4d  %-25s  %-30s  %-5d  %-8d  %s\n",
			r.ID, persona, job, r.Documents, r.Sections, r.CreatedAt)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	digest, err := store.GetRun(context.Background(), id)
	if err != nil {
		return err
	}

	if table, _ := cmd.Flags().GetBool("table"); table {
		pipeline.FormatTable(digest, os.Stdout)
		return nil
	}
	return pipeline.FormatJSON(digest, os.Stdout)
}

// truncate cuts on rune boundaries so multibyte personas and jobs are never
// split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
