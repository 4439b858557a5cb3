package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/stresslens/stresslens/pkg/metrics"
)

// ArtifactVersion identifies the serialized forest layout.
const ArtifactVersion = 1

// Node is a single decision-tree node in a flat node array. Internal nodes
// split on Feature at Threshold (left when value <= threshold); leaves carry
// a class probability distribution and have Feature == -1.
type Node struct {
	Feature   int       `json:"f"`
	Threshold float64   `json:"t,omitempty"`
	Left      int       `json:"l,omitempty"`
	Right     int       `json:"r,omitempty"`
	Probs     []float64 `json:"p,omitempty"`
}

// Tree is one decision tree; Nodes[0] is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a trained random-forest artifact. Read-only after load; safe for
// concurrent prediction.
type Forest struct {
	Version      int                `json:"version"`
	FeatureNames []string           `json:"feature_names"`
	Classes      []Category         `json:"classes"`
	Trees        []Tree             `json:"trees"`
	Importances  map[string]float64 `json:"feature_importances"`
}

// predict walks one tree and returns the leaf class distribution.
func (t *Tree) predict(features [metrics.NumFeatures]float64) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return n.Probs
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// PredictProba averages the per-tree leaf distributions into a single
// probability distribution over Classes.
func (f *Forest) PredictProba(features [metrics.NumFeatures]float64) []float64 {
	probs := make([]float64, len(f.Classes))
	for ti := range f.Trees {
		leaf := f.Trees[ti].predict(features)
		for ci := range probs {
			probs[ci] += leaf[ci]
		}
	}
	inv := 1.0 / float64(len(f.Trees))
	for ci := range probs {
		probs[ci] *= inv
	}
	return probs
}

// Marshal serializes the forest artifact to JSON.
func (f *Forest) Marshal() ([]byte, error) {
	return json.Marshal(f)
}

// UnmarshalForest parses a forest artifact and validates its shape against
// the fixed feature list.
func UnmarshalForest(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if f.Version != ArtifactVersion {
		return nil, fmt.Errorf("unsupported artifact version %d", f.Version)
	}
	if len(f.FeatureNames) != metrics.NumFeatures {
		return nil, fmt.Errorf("artifact has %d features, want %d", len(f.FeatureNames), metrics.NumFeatures)
	}
	for i, name := range metrics.FeatureNames {
		if f.FeatureNames[i] != name {
			return nil, fmt.Errorf("artifact feature %d is %q, want %q", i, f.FeatureNames[i], name)
		}
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("artifact has no trees")
	}
	return &f, nil
}
