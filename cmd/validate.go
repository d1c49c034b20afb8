package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/logger"
	"github.com/hydrojetpros/bidscout/internal/profile"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the company profile and report its completeness",
	RunE: func(_ *cobra.Command, _ []string) error {
		return validateProfile()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateProfile() error {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	profilePath := viper.GetString("profile")
	if profilePath == "" {
		logger.Fatal("company profile is required",
			zap.String("hint", "pass --profile or set 'profile' in the configuration file"),
		)
	}

	companyProfile, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	completeness := companyProfile.Assess()

	fmt.Printf("\nProfile: %s\nCompleteness: %d%%\n\n", companyProfile.DisplayName(), completeness.Overall)

	sections := make([]string, 0, len(completeness.Sections))
	for name := range completeness.Sections {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	fmt.Println("Sections:")
	for _, name := range sections {
		fmt.Printf("  %-15s %.0f%%\n", name, completeness.Sections[name])
	}

	if len(completeness.MissingCritical) > 0 {
		fmt.Println("\nMissing critical fields:")
		for _, field := range completeness.MissingCritical {
			fmt.Printf("  - %s (%s.%s)\n", field.Label, field.Section, field.Field)
		}
	}

	if len(completeness.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range completeness.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
	fmt.Println()

	if len(completeness.MissingCritical) > 0 {
		return fmt.Errorf("profile is missing %d critical field(s)", len(completeness.MissingCritical))
	}

	return nil
}
