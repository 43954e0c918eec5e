// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docdigest/internal/history"
	"github.com/pdiddy/docdigest/internal/pipeline"
	"github.com/pdiddy/docdigest/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank PDF sections against a persona and job-to-be-done",
	Long: `Analyze runs the digest pipeline over a batch of PDFs. The request comes
either from a challenge-style input JSON (--input, with PDFs resolved against
--pdf-dir) or directly from --persona, --job, and repeated --pdf flags.

Unreadable documents are skipped with a warning and excluded from the output
metadata; the run fails only when the request is malformed or no document can
be decoded.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("input", "", "request JSON file (persona, job_to_be_done, documents)")
	analyzeCmd.Flags().String("pdf-dir", "", "directory holding the PDFs named in the request (default: <input dir>/PDFs)")
	analyzeCmd.Flags().String("persona", "", "persona text (alternative to --input)")
	analyzeCmd.Flags().String("job", "", "job-to-be-done text (alternative to --input)")
	analyzeCmd.Flags().StringSlice("pdf", nil, "PDF file to analyze (repeatable; alternative to --input)")
	analyzeCmd.Flags().String("output", "digest.json", "output JSON path")
	analyzeCmd.Flags().Bool("report", false, "write a YAML run report next to the output")
	analyzeCmd.Flags().Int("top", 0, "digest size (overrides config)")
	analyzeCmd.Flags().Int("budget", 0, "excerpt character budget (overrides config)")
	analyzeCmd.Flags().Int("workers", 0, "concurrent document workers (overrides config)")
	analyzeCmd.Flags().Bool("no-history", false, "do not record the run in the history database")
	analyzeCmd.Flags().Bool("table", false, "print the ranked sections as a table")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := pipelineConfig(cmd)
	outputPath, _ := cmd.Flags().GetString("output")

	digest, report, err := pipeline.New(cfg).Run(context.Background(), req, os.Stderr)
	if err != nil {
		var verr *pipeline.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		if errors.Is(err, pipeline.ErrEmptyDocumentSet) {
			return fmt.Errorf("all %d document(s) failed decoding", len(req.PDFFiles))
		}
		return err
	}

	if err := pipeline.WriteDigest(digest, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outputPath)

	if wantReport, _ := cmd.Flags().GetBool("report"); wantReport {
		reportPath := reportPathFor(outputPath)
		if err := pipeline.WriteReport(report, reportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", reportPath)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if err := recordRun(digest, outputPath, cfg.HistoryDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		}
	}

	if table, _ := cmd.Flags().GetBool("table"); table {
		pipeline.FormatTable(digest, os.Stdout)
	}
	return nil
}

func recordRun(digest types.Digest, outputPath, historyDir string) error {
	store, err := history.NewStore(historyDir)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(context.Background(), digest, outputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "recorded run %d\n", id)
	return nil
}

// reportPathFor derives the YAML sidecar path: digest.json -> digest.report.yaml.
func reportPathFor(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return outputPath[:len(outputPath)-len(ext)] + ".report.yaml"
}

// pipelineConfig resolves configuration: documented defaults, then the viper
// config file / environment, then explicit flags.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetInt("digest.size"); v > 0 {
		cfg.Digest.Size = v
	}
	if v := viper.GetInt("digest.excerpt_budget"); v > 0 {
		cfg.Digest.ExcerptBudget = v
	}
	if v := viper.GetFloat64("scoring.title_factor"); v > 0 {
		cfg.Scoring.TitleFactor = v
	}
	if v := viper.GetFloat64("scoring.category_boost"); v > 0 {
		cfg.Scoring.CategoryBoost = v
	}
	if v := viper.GetFloat64("scoring.cross_boost"); v > 0 {
		cfg.Scoring.CrossBoost = v
	}
	if v := viper.GetInt("workers"); v > 0 {
		cfg.Workers = v
	}
	if v := viper.GetString("history_dir"); v != "" {
		cfg.HistoryDir = v
	}

	if v, _ := cmd.Flags().GetInt("top"); v > 0 {
		cfg.Digest.Size = v
	}
	if v, _ := cmd.Flags().GetInt("budget"); v > 0 {
		cfg.Digest.ExcerptBudget = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Workers = v
	}
	return cfg
}

// requestFromFlags builds the request either from the input JSON file or from
// the direct persona/job/pdf flags.
func requestFromFlags(cmd *cobra.Command) (types.Request, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath != "" {
		pdfDir, _ := cmd.Flags().GetString("pdf-dir")
		return loadRequestFile(inputPath, pdfDir)
	}

	persona, _ := cmd.Flags().GetString("persona")
	job, _ := cmd.Flags().GetString("job")
	pdfs, _ := cmd.Flags().GetStringSlice("pdf")
	if len(pdfs) == 0 {
		return types.Request{}, fmt.Errorf("provide --input or at least one --pdf")
	}
	return types.Request{Persona: persona, JobToBeDone: job, PDFFiles: pdfs}, nil
}

// flexText tolerates the two request encodings in the wild: a plain string,
// or an object carrying the text under "role"/"task"/"description".
type flexText string

func (t *flexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = flexText(s)
		return nil
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, key := range []string{"role", "task", "description"} {
		if v, ok := obj[key]; ok {
			*t = flexText(v)
			return nil
		}
	}
	return nil
}

// requestFile is the challenge-style input JSON.
type requestFile struct {
	Persona     flexText `json:"persona"`
	JobToBeDone flexText `json:"job_to_be_done"`
	Documents   []struct {
		Filename string `json:"filename"`
		Title    string `json:"title"`
	} `json:"documents"`
}

// loadRequestFile reads a challenge-style request JSON and resolves document
// filenames against pdfDir (default: a PDFs/ directory next to the input
// file). Filenames that do not exist are still passed through: the pipeline
// records them as skipped rather than failing the run.
func loadRequestFile(path, pdfDir string) (types.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Request{}, fmt.Errorf("reading input file: %w", err)
	}

	var rf requestFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return types.Request{}, fmt.Errorf("parsing input file: %w", err)
	}

	if pdfDir == "" {
		pdfDir = filepath.Join(filepath.Dir(path), "PDFs")
	}

	req := types.Request{
		Persona:     string(rf.Persona),
		JobToBeDone: string(rf.JobToBeDone),
	}
	for _, doc := range rf.Documents {
		if doc.Filename == "" {
			continue
		}
		req.PDFFiles = append(req.PDFFiles, filepath.Join(pdfDir, doc.Filename))
	}
	return req, nil
}
