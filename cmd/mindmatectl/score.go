package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type scoreFlags struct {
	answers   string
	file      string
	configDir string
	format    string
}

// answerFile 答案文件格式：answers: [1, 0, 2, ...]
type answerFile struct {
	Answers []int `yaml:"answers"`
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a complete answer set and print the recommended program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.answers, "answers", "", "Comma separated answer values, one per question")
	flags.StringVar(&f.file, "file", "", "YAML file with an answers list")
	flags.StringVar(&f.configDir, "config", "", "Config directory to read assessment thresholds from")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")

	return cmd
}

func runScore(w io.Writer, f *scoreFlags) error {
	answers, err := loadAnswers(f)
	if err != nil {
		return err
	}

	thresholds := assessment.DefaultThresholds()
	if f.configDir != "" {
		cfg, err := config.LoadConfig(f.configDir)
		if err != nil {
			return exitError(3, "failed to load config: %v", err)
		}
		thresholds = cfg.Assessment.Thresholds
	}

	recommender, err := assessment.NewRecommender(thresholds)
	if err != nil {
		return exitError(3, "%v", err)
	}

	score, err := assessment.NewScorer(assessment.DefaultQuestions()).Score(answers)
	if err != nil {
		if errors.Is(err, assessment.ErrIncompleteAssessment) {
			return exitError(2, "%v", err)
		}
		return err
	}

	outcome := model.AssessmentOutcome{
		Score:          score,
		Recommendation: recommender.Recommend(score.RawScore),
	}

	switch f.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	case "text":
		writeOutcome(w, outcome)
		return nil
	default:
		return exitError(2, "unknown format %q (want text or json)", f.format)
	}
}

func loadAnswers(f *scoreFlags) ([]int, error) {
	switch {
	case f.answers != "" && f.file != "":
		return nil, exitError(2, "use either --answers or --file, not both")
	case f.answers != "":
		return parseAnswers(f.answers)
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, exitError(3, "failed to read answers file: %v", err)
		}
		var af answerFile
		if err := yaml.Unmarshal(data, &af); err != nil {
			return nil, exitError(2, "invalid answers file %s: %v", f.file, err)
		}
		return af.Answers, nil
	default:
		return nil, exitError(2, "one of --answers or --file is required")
	}
}

func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, exitError(2, "invalid answer value %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func writeOutcome(w io.Writer, o model.AssessmentOutcome) {
	fmt.Fprintf(w, "Wellness score: %d/100 (%s)\n", o.Score.DisplayScore, o.Score.Band)
	fmt.Fprintf(w, "Raw score:      %d/%d\n", o.Score.RawScore, o.Score.MaxScore)
	fmt.Fprintf(w, "Program:        %s\n", o.Recommendation.Name)
	fmt.Fprintf(w, "                %s\n", o.Recommendation.Description)
	fmt.Fprintf(w, "Focus:          %s\n", strings.Join(o.Recommendation.Focus, ", "))
	fmt.Fprintf(w, "Insight:        %s\n", o.Recommendation.Insight)
}
