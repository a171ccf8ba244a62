package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"affiliate_autopilot/announcer"
	"affiliate_autopilot/config"
	"affiliate_autopilot/generator"
	"affiliate_autopilot/httpclient"
	"affiliate_autopilot/logger"
	"affiliate_autopilot/pipeline"
	"affiliate_autopilot/publisher"
)

func main() {
	envPath := flag.String("env", ".env", "path to .env file (optional)")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	run(context.Background(), cfg, log)
}

// run builds and executes one pipeline. Any failure is logged once here and
// the process still exits 0.
func run(ctx context.Context, cfg config.Config, log logger.Logger) {
	runner, err := buildRunner(cfg, log)
	if err == nil {
		_, err = runner.Run(ctx)
	}
	if err != nil {
		log.ErrorObj("Error", "run_failed", map[string]any{"error": err.Error()})
	}
}

func buildRunner(cfg config.Config, log logger.Logger) (*pipeline.Runner, error) {
	llm, err := generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Model:   cfg.OpenAI.Model,
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	}, nil)
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm,
		generator.WithRequireContent(cfg.Article.RequireContent),
		generator.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	client := httpclient.New(cfg.HTTPTimeout)
	pub, err := publisher.New(cfg.WordPress, client, log)
	if err != nil {
		return nil, err
	}
	ann := announcer.New(cfg.SocialBee, client, log)

	return pipeline.NewRunner(agent, pub, ann, log)
}
