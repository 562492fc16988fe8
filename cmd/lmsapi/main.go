package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents/bedrock"
	"github.com/anirudhnekkanti/LMSAgentAPI/internal/config"
	httpserver "github.com/anirudhnekkanti/LMSAgentAPI/internal/http"
	"github.com/anirudhnekkanti/LMSAgentAPI/internal/logging"
)

var (
	portFlag    int
	verboseFlag bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lmsapi",
		Short: "LMS backend - Bedrock agent gateway for the learning platform",
		Long: `lmsapi is the backend for the AI learning management system.
It forwards course, quiz and chatbot requests to AWS Bedrock agents and
relays their JSON replies to the frontend.`,
		RunE: runServer,
	}

	rootCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "HTTP server port (overrides PORT)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output (log raw agent completions)")

	// Logs subcommand
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "View or tail log files",
		RunE:  viewLogs,
	}
	logsCmd.Flags().BoolP("follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().IntP("lines", "n", 50, "Number of lines to show")
	rootCmd.AddCommand(logsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load .env files from common locations (ignore errors if not found)
	homeDir, _ := os.UserHomeDir()
	godotenv.Load(".env")                         // Current directory
	godotenv.Load(filepath.Join(homeDir, ".env")) // Home directory

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logging
	if err := logging.Init(cfg.DataPath); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Close()

	if verboseFlag {
		logging.SetLevel(logging.LevelDebug)
	}

	logging.Info("Starting LMS backend")
	fmt.Printf("Logging to %s\n", logging.GetLogPath())

	// Override port if specified
	port := cfg.Port
	if portFlag > 0 {
		port = portFlag
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logging.Info("Received shutdown signal")
		cancel()
	}()

	// Initialize the Bedrock agent runtime client
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	agentClient, err := bedrock.New(bedrockagentruntime.NewFromConfig(awsCfg))
	if err != nil {
		return fmt.Errorf("failed to create agent client: %w", err)
	}

	courseCreator := cfg.CourseCreatorAgent()
	trainer := cfg.TrainerAgent()

	// Don't fail on missing agent IDs - requests that need an unconfigured
	// agent get an error response instead
	if !courseCreator.Configured() {
		logging.Warn("%s is not configured, set COURSE_CREATOR_AGENT_ID and COURSE_CREATOR_AGENT_ALIAS_ID", courseCreator.Name)
	}
	if !trainer.Configured() {
		logging.Warn("%s is not configured, set TRAINER_AGENT_ID and TRAINER_AGENT_ALIAS_ID", trainer.Name)
	}

	// Create HTTP server
	server := httpserver.NewServer(cfg, agentClient, port)

	// Run server
	if err := server.Run(ctx); err != nil && err.Error() != "http: Server closed" {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func viewLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	follow, _ := cmd.Flags().GetBool("follow")
	lines, _ := cmd.Flags().GetInt("lines")

	logDir := cfg.DataPath + "/logs"

	// Find the most recent log file
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No log files found")
		return nil
	}

	var latestLog string
	for _, entry := range entries {
		if !entry.IsDir() {
			latestLog = logDir + "/" + entry.Name()
		}
	}

	if latestLog == "" {
		fmt.Println("No log files found")
		return nil
	}

	fmt.Printf("Log file: %s\n\n", latestLog)

	if follow {
		fmt.Println("Press Ctrl+C to stop")
		return execCommand("tail", "-f", "-n", fmt.Sprintf("%d", lines), latestLog)
	}

	// Just show last N lines
	return execCommand("tail", "-n", fmt.Sprintf("%d", lines), latestLog)
}

func execCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
