package classifier

import (
	"errors"
	"fmt"

	"github.com/stresslens/stresslens/pkg/metrics"
)

// ErrModelUnavailable reports that no trained artifact is loaded and none
// could be loaded from the model store. The pipeline must not accept
// assessment requests until this is resolved.
var ErrModelUnavailable = errors.New("stress model unavailable")

// Classifier wraps an immutable trained forest. A loaded Classifier is
// read-only and safe for concurrent use.
type Classifier struct {
	forest *Forest
}

// New wraps an already trained forest.
func New(f *Forest) *Classifier {
	return &Classifier{forest: f}
}

// Load parses a serialized artifact into a ready Classifier.
func Load(data []byte) (*Classifier, error) {
	f, err := UnmarshalForest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return &Classifier{forest: f}, nil
}

// Predict runs pure inference over the record's feature vector. It returns
// the arg-max category, its probability, the full distribution, and the
// artifact's global feature importances.
func (c *Classifier) Predict(rec metrics.Record) (Assessment, error) {
	if c == nil || c.forest == nil {
		return Assessment{}, ErrModelUnavailable
	}

	probs := c.forest.PredictProba(rec.Features())

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}

	dist := make(map[Category]float64, len(probs))
	for i, cls := range c.forest.Classes {
		dist[cls] = probs[i]
	}

	importance := make(map[string]float64, len(c.forest.Importances))
	for k, v := range c.forest.Importances {
		importance[k] = v
	}

	return Assessment{
		Category:          c.forest.Classes[best],
		Confidence:        probs[best],
		Probabilities:     dist,
		FeatureImportance: importance,
	}, nil
}
