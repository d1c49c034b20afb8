package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/ai"
	"github.com/hydrojetpros/bidscout/internal/ai/gemini"
	"github.com/hydrojetpros/bidscout/internal/logger"
	"github.com/hydrojetpros/bidscout/internal/match"
	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/report"
	"github.com/hydrojetpros/bidscout/internal/rfp"
	"github.com/hydrojetpros/bidscout/internal/secrets"
)

const (
	PromptShowReport       = "Show full report"
	PromptGenerateProposal = "Generate proposal draft"
	PromptDumpResult       = "Dump result to JSON file"
	PromptExit             = "Exit"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptGenerateProposal, PromptDumpResult, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an RFP document against the company profile",
	Long: `Analyze extracts requirements from an RFP document, scores them against
the company profile, and prints a bid/no-bid recommendation with the gaps
that drove it. RFP text comes from --file, --sample, or stdin.`,
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "path to the RFP text file")
	analyzeCmd.Flags().StringP("sample", "s", "", fmt.Sprintf("name of a built-in sample RFP (%s)", strings.Join(rfp.SampleNames(), ", ")))
	analyzeCmd.Flags().IntP("tiers", "t", 3, "decision tier scheme: 3 (GO/MAYBE/NO-GO) or 4 (confidence tiers)")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without the interactive menu")
	analyzeCmd.Flags().StringP("output", "o", "", "file to write the result JSON to")

	viper.BindPFlag("tiers", analyzeCmd.Flags().Lookup("tiers"))
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	logger.Info("starting bidscout", zap.String("version", version))

	rfpText, err := loadRFPText(cmd)
	if err != nil {
		logger.Fatal("loading rfp text", zap.Error(err))
	}

	profilePath := viper.GetString("profile")
	if profilePath == "" {
		logger.Fatal("company profile is required",
			zap.String("hint", "pass --profile or set 'profile' in the configuration file"),
		)
	}

	companyProfile, err := profile.Load(profilePath)
	if err != nil {
		logger.Fatal("loading company profile", zap.Error(err))
	}

	scheme, err := match.ParseTierScheme(viper.GetInt("tiers"))
	if err != nil {
		logger.Fatal("selecting tier scheme", zap.Error(err))
	}

	opts := []match.Option{match.WithTierScheme(scheme)}

	var generator *gemini.Generator
	if config.AI != nil && config.AI.Enabled {
		generator, err = newGeminiGenerator(ctx, config.AI)
		if err != nil {
			logger.Warn("remote extraction disabled", zap.Error(err))
		} else {
			opts = append(opts, match.WithRemoteExtractor(gemini.NewExtractor(generator, logger)))
			if config.AI.Gemini != nil && config.AI.Gemini.TimeoutSeconds > 0 {
				opts = append(opts, match.WithRemoteTimeout(time.Duration(config.AI.Gemini.TimeoutSeconds)*time.Second))
			}
		}
	}

	analyzer := match.NewAnalyzer(logger, opts...)

	result, err := analyzer.Analyze(ctx, rfpText, companyProfile)
	if err != nil {
		logger.Fatal("analyzing rfp", zap.Error(err))
	}

	result.Analysis = report.Narrate(result, companyProfile.DisplayName())

	fmt.Printf("\nDecision: %s (score %d)\n\n%s\n\n", result.Decision, result.Score, result.Analysis)

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := dumpResult(result, output); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, result, rfpText, companyProfile, generator, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, result *match.Result, rfpText string, p *profile.CompanyProfile, generator *gemini.Generator, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Printf("\n%s\n\n", result.Analysis)
		return nil
	case PromptGenerateProposal:
		proposal := buildProposal(ctx, result, rfpText, p, generator, logger)
		printProposal(proposal)
		return nil
	case PromptDumpResult:
		filename, err := dumpResultToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildProposal prefers the remote writer and falls back to the template
// draft on any failure, so the command always produces something usable.
func buildProposal(ctx context.Context, result *match.Result, rfpText string, p *profile.CompanyProfile, generator *gemini.Generator, logger *zap.Logger) *ai.Proposal {
	pctx := ai.ProposalContext{
		CompanyName:         p.DisplayName(),
		Decision:            string(result.Decision),
		Score:               result.Score,
		MissingRequirements: result.MissingRequirements,
		FillableGaps:        result.FillableGaps,
		Analysis:            result.Analysis,
	}

	if generator != nil {
		writer := gemini.NewWriter(generator, logger)
		proposal, err := writer.WriteProposal(ctx, rfpText, pctx)
		if err == nil {
			return proposal
		}
		logger.Warn("remote proposal generation failed, using template draft", zap.Error(err))
	}

	return report.FallbackProposal(pctx)
}

func printProposal(proposal *ai.Proposal) {
	sections := []struct {
		title string
		body  string
	}{
		{"Cover Letter", proposal.CoverLetter},
		{"Executive Summary", proposal.ExecutiveSummary},
		{"Technical Approach", proposal.TechnicalApproach},
		{"Pricing", proposal.Pricing},
		{"Why Choose Us", proposal.WhyChooseUs},
	}

	for _, section := range sections {
		fmt.Printf("\n=== %s ===\n\n%s\n", section.title, section.body)
	}
	fmt.Println()
}

// loadRFPText resolves the RFP text source: an explicit file wins, then a
// built-in sample, then stdin.
func loadRFPText(cmd *cobra.Command) (string, error) {
	if file := cmd.Flag("file").Value.String(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading rfp file: %w", err)
		}
		return string(data), nil
	}

	if name := cmd.Flag("sample").Value.String(); name != "" {
		sample, err := rfp.LookupSample(name)
		if err != nil {
			return "", err
		}
		return sample.Content, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading rfp text from stdin: %w", err)
	}
	return string(data), nil
}

func dumpResult(result *match.Result, filename string) error {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, pretty, 0o644)
}

func dumpResultToTmpFile(result *match.Result) (string, error) {
	f, err := os.CreateTemp("", app+"-result-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(pretty); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func newGeminiGenerator(ctx context.Context, cfg *AIConfig) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set GEMINI_API_KEY, GEMINI_API_KEY_FILE, or ai.gemini.api-key-file)", err)
	}

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
}
