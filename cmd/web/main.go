package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/handlers/assessment"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/server"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/config"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/decision"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/feasibility"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/finance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/governance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/maturity"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/priority"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/risk"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb"
	governancestore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/governance"
	responsestore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/responses"
	riskstore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/risks"
)

var (
	bankPath    string
	profilePath string
	dbPath      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the governance calculation API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&bankPath, "bank", "configs/questionbank.yaml",
		"Path to the question bank")
	rootCmd.Flags().StringVar(&profilePath, "profile", "",
		"Path to an optional scoring profile")
	rootCmd.Flags().StringVar(&dbPath, "db", "governance.db",
		"Path to the DuckDB database file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	questions, err := feasibility.LoadQuestionBank(bankPath)
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}
	logger.Info().Int("questions", len(questions)).Str("path", bankPath).Msg("question bank loaded")

	feasibilitySettings := feasibility.DefaultSettings()
	priorityWeights := priority.DefaultWeights()
	if profilePath != "" {
		profile, err := config.LoadScoringProfile(profilePath)
		if err != nil {
			return fmt.Errorf("failed to load scoring profile: %w", err)
		}
		feasibilitySettings = profile.FeasibilitySettings()
		priorityWeights = profile.PriorityWeightsOrDefault()
		logger.Info().Str("path", profilePath).Msg("scoring profile loaded")
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	responses, err := responsestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create response store: %w", err)
	}
	risks, err := riskstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create risk store: %w", err)
	}
	gov, err := governancestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create governance store: %w", err)
	}

	handler := assessment.NewHandler(assessment.Engines{
		Questions:    questions,
		Feasibility:  feasibilitySettings,
		TierBands:    risk.DefaultTierBands(),
		MaturityRecs: maturity.DefaultRecommendations(),
		Priority:     priorityWeights,
		PriorityBand: priority.DefaultBands(),
		Finance:      finance.DefaultSettings(),
		Scenarios:    finance.DefaultScenarios(),
		Governance:   governance.DefaultSettings(),
		Synthesizer:  decision.NewSynthesizer(decision.DefaultSynthesisThresholds(), decision.DefaultNextSteps()),
		Briefs:       decision.NewBriefGenerator(decision.DefaultBriefThresholds(), decision.DefaultNextSteps()),
	}, responses, risks, gov)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		logger.Error().Msg("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Assessment: handler,
		},
	})

	return api.Start()
}
