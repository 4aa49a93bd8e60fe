package search

import (
	"fmt"

	"github.com/brensch/snekmax/eval"
	"github.com/brensch/snekmax/rules"
)

// DefaultDepth is the number of plies searched per decision.
const DefaultDepth = 3

// Config holds the tunable parameters of the search.
type Config struct {
	Depth   int
	Weights eval.Weights
	Body    rules.BodyModel
}

func DefaultConfig() Config {
	return Config{
		Depth:   DefaultDepth,
		Weights: eval.DefaultWeights,
		Body:    rules.BodyFullChain,
	}
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("search depth must be >= 0, got %d", c.Depth)
	}
	switch c.Body {
	case rules.BodyFullChain, rules.BodyTwoSegment:
	default:
		return fmt.Errorf("unknown body model %v", c.Body)
	}
	return nil
}
