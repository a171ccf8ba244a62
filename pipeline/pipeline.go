// Package pipeline runs generate, publish and announce once, in order.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"affiliate_autopilot/generator"
	"affiliate_autopilot/logger"
)

type Generator interface {
	Generate(ctx context.Context) (generator.Article, error)
}

type Publisher interface {
	Publish(ctx context.Context, title, content string) (string, error)
}

type Announcer interface {
	Announce(ctx context.Context, title, link string) error
}

// Result is what a completed run produced.
type Result struct {
	Article generator.Article
	Link    string
}

// Runner holds the three stages. It keeps no state between runs, so every Run
// publishes a new post.
type Runner struct {
	gen Generator
	pub Publisher
	ann Announcer
	log logger.Logger
}

func NewRunner(gen Generator, pub Publisher, ann Announcer, log logger.Logger) (*Runner, error) {
	if gen == nil || pub == nil || ann == nil {
		return nil, errors.New("generator, publisher and announcer are required")
	}
	return &Runner{gen: gen, pub: pub, ann: ann, log: logger.Ensure(log)}, nil
}

// Run executes each stage after the previous one returns. The first error
// stops the run and is returned with its stage name.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.log.InfoObj("Generating affiliate article...", "stage_generate", nil)
	art, err := r.gen.Generate(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}
	res := Result{Article: art}

	r.log.InfoObj("Posting to WordPress...", "stage_publish", map[string]any{"title": art.Title})
	link, err := r.pub.Publish(ctx, art.Title, art.Content)
	if err != nil {
		return res, fmt.Errorf("publish: %w", err)
	}
	res.Link = link

	r.log.InfoObj("Sharing on SocialBee...", "stage_announce", map[string]any{"link": link})
	if err := r.ann.Announce(ctx, art.Title, link); err != nil {
		return res, fmt.Errorf("announce: %w", err)
	}

	r.log.InfoObj("All done! See you tomorrow for the next post!", "run_complete", nil)
	return res, nil
}
