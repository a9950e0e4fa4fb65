package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/intellects/aiready/internal/ai"
	"github.com/intellects/aiready/internal/ai/gemini"
	"github.com/intellects/aiready/internal/assessment"
	"github.com/intellects/aiready/internal/logger"
	"github.com/intellects/aiready/internal/secrets"
	"github.com/intellects/aiready/internal/submission"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptBack = "← Back"
	PromptDone = "✔ Done selecting"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the readiness assessment wizard",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("email", "", "email for the detailed report. Skips the email prompt.")
	runCmd.Flags().Bool("no-submit", false, "do not send the completed assessment to the webhook")
	runCmd.Flags().String("catalog", "", "path to a JSON question catalog. Default is the built-in set.")

	viper.BindPFlag("catalog-file", runCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("email", runCmd.Flags().Lookup("email"))
}

// run drives one assessment session from start to submission.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the aiready wizard", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	catalog := assessment.Default()
	if config.CatalogFile != "" {
		catalog, err = assessment.Load(config.CatalogFile)
		if err != nil {
			logger.Fatal("loading question catalog", zap.Error(err))
		}
		logger.Info("loaded question catalog",
			zap.String("path", config.CatalogFile),
			zap.Int("questions", catalog.TotalQuestionCount()),
		)
	}

	session := assessment.NewSession(catalog)
	session.Start()

	if err := runWizard(session); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	results := session.Results()
	printResults(results)

	if summary := summarize(ctx, config.AI, results, logger); summary != nil {
		printSummary(summary)
	}

	if cmd.Flag("no-submit").Value.String() == "true" {
		logger.Info("skipping submission", zap.String("reason", "no-submit flag is set"))
		return
	}

	submit(ctx, config, session, results, logger)
}

// runWizard walks the session through both answerable phases.
func runWizard(session *assessment.Session) error {
	phases := assessment.Phases()
	lastPhase := assessment.PhaseNotStarted

	for session.Phase() != assessment.PhaseResults {
		if session.Phase() != lastPhase {
			lastPhase = session.Phase()
			printPhaseHeader(phases[lastPhase-1])
		}

		question := session.CurrentQuestion()
		if question == nil {
			return fmt.Errorf("no question at phase %d index %d", session.Phase(), session.QuestionIndex())
		}

		optionIDs, back, err := askQuestion(session, question)
		if err != nil {
			return err
		}

		if back {
			session.Retreat()
			continue
		}

		answer, err := question.Answer(optionIDs...)
		if err != nil {
			return err
		}
		if err := session.RecordAnswer(answer); err != nil {
			return err
		}

		session.Advance()
	}

	return nil
}

func askQuestion(session *assessment.Session, question *assessment.Question) ([]string, bool, error) {
	fmt.Printf("\n%s\n", question.Text)
	if question.Description != "" {
		fmt.Printf("  %s\n", question.Description)
	}
	fmt.Printf("  (%.0f%% complete)\n", session.Progress())

	if question.Type == assessment.SingleChoice {
		return askSingleChoice(session, question)
	}
	return askMultipleChoice(session, question)
}

func askSingleChoice(session *assessment.Session, question *assessment.Question) ([]string, bool, error) {
	items := make([]string, 0, len(question.Options)+1)
	for _, opt := range question.Options {
		items = append(items, opt.Label)
	}
	if !session.IsFirstQuestion() {
		items = append(items, PromptBack)
	}

	prompt := promptui.Select{
		Label: "Choose one and press ENTER",
		Items: items,
		Size:  len(items),
	}

	idx, selected, err := prompt.Run()
	if err != nil {
		return nil, false, err
	}
	if selected == PromptBack {
		return nil, true, nil
	}

	return []string{question.Options[idx].ID}, false, nil
}

func askMultipleChoice(session *assessment.Session, question *assessment.Question) ([]string, bool, error) {
	selected := make(map[string]bool)

	for {
		items := make([]string, 0, len(question.Options)+2)
		for _, opt := range question.Options {
			marker := "[ ]"
			if selected[opt.ID] {
				marker = "[x]"
			}
			items = append(items, fmt.Sprintf("%s %s", marker, opt.Label))
		}
		items = append(items, PromptDone)
		if !session.IsFirstQuestion() {
			items = append(items, PromptBack)
		}

		prompt := promptui.Select{
			Label: "Toggle all that apply, then choose Done",
			Items: items,
			Size:  len(items),
		}

		idx, choice, err := prompt.Run()
		if err != nil {
			return nil, false, err
		}

		switch choice {
		case PromptBack:
			return nil, true, nil
		case PromptDone:
			ids := make([]string, 0, len(selected))
			for _, opt := range question.Options {
				if selected[opt.ID] {
					ids = append(ids, opt.ID)
				}
			}
			if question.Required && len(ids) == 0 {
				fmt.Println("Select at least one option.")
				continue
			}
			return ids, false, nil
		default:
			id := question.Options[idx].ID
			selected[id] = !selected[id]
		}
	}
}

func printPhaseHeader(phase assessment.Phase) {
	fmt.Printf("\n%s  %s — %s (%s)\n", phase.Emoji, phase.Title, phase.Subtitle, phase.EstimatedTime)
}

func printResults(results *assessment.Results) {
	phases := assessment.Phases()
	printPhaseHeader(phases[assessment.PhaseResults-1])

	fmt.Printf("\nOverall readiness:     %5.1f / 100\n", results.OverallScore)
	fmt.Printf("Automation readiness:  %5.1f / 100\n", results.AutomationReadinessScore)
	fmt.Printf("AI opportunity:        %5.1f / 100\n", results.AIOpportunityScore)
	fmt.Printf("Adoption readiness:    %5.1f / 100\n", results.AdoptionReadinessScore)

	if results.TimeWastedHoursPerWeek > 0 {
		fmt.Printf("\nEstimated %.1f hours/week lost to manual work.\n", results.TimeWastedHoursPerWeek)
		fmt.Printf("Automating could save %.1f hours/week, roughly $%.0f/year.\n",
			results.PotentialROI.HoursSavedPerWeek,
			results.PotentialROI.EstimatedAnnualSavings,
		)
	}

	fmt.Println("\nRecommendations:")
	for _, r := range results.Recommendations {
		fmt.Printf("  [%s] %s\n      %s\n      https://intellects.tech%s\n", strings.ToUpper(string(r.Priority)), r.Title, r.Description, r.ServicePath)
	}

	if len(results.PriorityActions) > 0 {
		fmt.Println("\nStart here:")
		for i, action := range results.PriorityActions {
			fmt.Printf("  %d. %s\n", i+1, action)
		}
	}
}

func printSummary(summary *ai.Summary) {
	fmt.Printf("\n%s\n", summary.Headline)
	if summary.Narrative != "" {
		fmt.Printf("\n%s\n", summary.Narrative)
	}
	for _, step := range summary.NextSteps {
		fmt.Printf("  - %s\n", step)
	}
}

// summarize builds the optional Gemini summary. Any failure degrades to the
// plain results output.
func summarize(ctx context.Context, cfg *AIConfig, results *assessment.Results, logger *zap.Logger) *ai.Summary {
	summarizer, err := newSummarizer(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping AI summary", zap.Error(err))
		return nil
	}
	if summarizer == nil {
		return nil
	}

	summary, err := summarizer.Summarize(ctx, results)
	if err != nil {
		logger.Warn("AI summary failed", zap.Error(err))
		return nil
	}
	return summary
}

func newSummarizer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Summarizer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai summary is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewSummarizer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

// submit sends the completed session to the webhook: one anonymous
// submission, plus a distinct detailed-report submission when an email is
// supplied. Both are best-effort and never block the results already shown.
func submit(ctx context.Context, config *Config, session *assessment.Session, results *assessment.Results, logger *zap.Logger) {
	client := submission.New(ctx, logger)
	if config.Webhooks != nil && config.Webhooks.Assessment != "" {
		client.WebhookURL = config.Webhooks.Assessment
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	first := client.SubmitAsync(submission.NewPayload(session, results, client.UserAgent, config.Referrer, ""))

	email := askEmail(viper.GetString("email"))
	var second <-chan struct{}
	if email != "" {
		second = client.SubmitAsync(submission.NewPayload(session, results, client.UserAgent, config.Referrer, email))
		fmt.Printf("\nA detailed report will be sent to %s.\n", email)
	}

	// Wait for the in-flight sends before the process exits; failures were
	// already logged as warnings.
	<-first
	if second != nil {
		<-second
	}
}

// askEmail prompts for a report email unless one was preset. Empty input
// skips the report.
func askEmail(preset string) string {
	if preset != "" {
		return strings.TrimSpace(preset)
	}

	prompt := promptui.Prompt{
		Label: "Email for a detailed report (ENTER to skip)",
		Validate: func(input string) error {
			input = strings.TrimSpace(input)
			if input == "" || strings.Contains(input, "@") {
				return nil
			}
			return fmt.Errorf("enter a valid email or leave empty")
		},
	}

	email, err := prompt.Run()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(email)
}
