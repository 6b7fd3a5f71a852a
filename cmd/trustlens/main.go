// Command trustlens verifies a piece of social-media content against live
// sources and prints the validated verdict record as JSON. It is a thin
// driver over the verify pipeline; persistence and sharing live elsewhere.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trustlens/internal/config"
	"trustlens/internal/logging"
	"trustlens/internal/reasoning"
	"trustlens/internal/verify"
)

var (
	flagConfig    string
	flagContent   string
	flagSourceURL string
	flagPlatform  string
	flagMedia     []string
	flagUsername  string
	flagFollowers int
	flagVerified  bool
	flagDebug     bool
)

func main() {
	root := &cobra.Command{
		Use:   "trustlens [content]",
		Short: "Verify social-media content against live sources",
		Long: "trustlens runs a piece of content through a grounded reasoning engine and " +
			"prints a schema-conformant trust verdict. Content is read from the first " +
			"argument, --content, or stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	root.Flags().StringVarP(&flagConfig, "config", "c", "trustlens.yaml", "config file path")
	root.Flags().StringVar(&flagContent, "content", "", "content to verify (overrides the positional argument)")
	root.Flags().StringVar(&flagSourceURL, "source-url", "", "URL the content was posted at")
	root.Flags().StringVar(&flagPlatform, "platform", "", "platform the content appeared on")
	root.Flags().StringSliceVar(&flagMedia, "media", nil, "attached media URLs")
	root.Flags().StringVar(&flagUsername, "author", "", "posting account username")
	root.Flags().IntVar(&flagFollowers, "followers", 0, "posting account follower count")
	root.Flags().BoolVar(&flagVerified, "author-verified", false, "posting account has a verified badge")
	root.Flags().BoolVar(&flagDebug, "debug", false, "verbose operator logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagDebug)
	defer logger.Sync()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cwd); err != nil {
		logger.Warn("Debug logging unavailable", zap.Error(err))
	}
	defer logging.CloseAll()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	content, err := resolveContent(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := reasoning.NewGeminiClient(ctx, reasoning.GeminiConfig{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Timeout:         cfg.GeminiTimeout(),
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})
	if err != nil {
		return fmt.Errorf("reasoning engine not configured: %w", err)
	}

	pipeline, err := verify.New(client, verify.Config{AttemptTimeout: cfg.AttemptTimeout()})
	if err != nil {
		return err
	}

	req := verify.VerificationRequest{
		Content:   content,
		SourceURL: flagSourceURL,
		Platform:  flagPlatform,
		MediaURLs: flagMedia,
	}
	if flagUsername != "" || flagFollowers > 0 || flagVerified {
		req.Author = &verify.Author{
			Username:  flagUsername,
			Followers: flagFollowers,
			Verified:  flagVerified,
		}
	}

	logger.Info("Verifying content",
		zap.String("model", client.Model()),
		zap.Int("content_len", len(content)))

	result, err := pipeline.Verify(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("Verification complete",
		zap.String("verdict", string(result.Verdict)),
		zap.Int("trust_score", result.TrustScore),
		zap.Bool("grounded", result.GroundingUsed),
		zap.Int64("elapsed_ms", result.ProcessingTimeMs))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// resolveContent takes content from --content, the positional argument, or
// stdin, in that order.
func resolveContent(stdin io.Reader, args []string) (string, error) {
	if flagContent != "" {
		return flagContent, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read content from stdin: %w", err)
	}
	return string(data), nil
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
