// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package action

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
	"github.com/tomtom215/kinoteca/internal/command"
	"github.com/tomtom215/kinoteca/internal/query"
	"github.com/tomtom215/kinoteca/internal/recommend"
)

// Runner executes one batch of actions against one store, strictly
// sequentially in ascending action-id order. Each action observes every
// mutation made by the actions before it and none after.
type Runner struct {
	commands        *command.Executor
	queries         *query.Executor
	recommendations *recommend.Executor
	logger          zerolog.Logger
}

// NewRunner builds a runner with all three executors bound to the store.
func NewRunner(store *catalog.Store, logger zerolog.Logger) *Runner {
	return &Runner{
		commands:        command.NewExecutor(store, logger),
		queries:         query.NewExecutor(store, logger),
		recommendations: recommend.NewExecutor(store, logger),
		logger:          logger.With().Str("component", "runner").Logger(),
	}
}

// Run executes the actions in ascending id order and returns one result
// per action, in the same order. Every action yields a result; failures
// are rendered messages, never dropped.
func (r *Runner) Run(actions []Action) []Result {
	ordered := make([]Action, len(actions))
	copy(ordered, actions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	results := make([]Result, 0, len(ordered))
	for _, a := range ordered {
		results = append(results, Result{
			ID:      a.ID,
			Message: r.execute(a),
		})
	}

	r.logger.Debug().Int("actions", len(results)).Msg("batch executed")
	return results
}

func (r *Runner) execute(a Action) string {
	switch a.Kind {
	case KindCommand:
		return r.commands.Execute(*a.Command)
	case KindQuery:
		return r.queries.Execute(*a.Query)
	case KindRecommendation:
		return r.recommendations.Execute(*a.Recommendation)
	default:
		// Parse rejects unknown kinds; reaching this is a programming
		// error, not a recoverable outcome.
		panic("action: unreachable kind " + string(a.Kind))
	}
}
