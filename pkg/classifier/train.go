package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/stresslens/stresslens/pkg/metrics"
)

// Sample is one labeled training example.
type Sample struct {
	Features [metrics.NumFeatures]float64
	Label    Category
}

// TrainOptions controls forest training.
type TrainOptions struct {
	Trees       int   // number of trees
	MaxDepth    int   // maximum tree depth
	MinLeafSize int   // minimum samples per leaf
	Seed        int64 // RNG seed; training is deterministic for a fixed seed
}

// DefaultTrainOptions mirrors the settings the production model was
// trained with.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Trees:       100,
		MaxDepth:    10,
		MinLeafSize: 2,
		Seed:        42,
	}
}

// Train fits a random forest on the given samples. Each tree is grown on a
// bootstrap resample with a random sqrt-sized feature subset per split.
func Train(samples []Sample, opts TrainOptions) (*Forest, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}
	if opts.Trees <= 0 || opts.MaxDepth <= 0 {
		return nil, fmt.Errorf("invalid train options: trees=%d max_depth=%d", opts.Trees, opts.MaxDepth)
	}
	if opts.MinLeafSize < 1 {
		opts.MinLeafSize = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	forest := &Forest{
		Version:      ArtifactVersion,
		FeatureNames: append([]string(nil), metrics.FeatureNames...),
		Classes:      append([]Category(nil), Categories...),
	}

	rawImportance := make([]float64, metrics.NumFeatures)
	for t := 0; t < opts.Trees; t++ {
		boot := make([]Sample, len(samples))
		for i := range boot {
			boot[i] = samples[rng.Intn(len(samples))]
		}
		b := &treeBuilder{
			opts:       opts,
			rng:        rng,
			numClasses: len(forest.Classes),
			classIndex: classIndexMap(forest.Classes),
			importance: rawImportance,
			total:      float64(len(boot)),
		}
		b.grow(boot, 0)
		forest.Trees = append(forest.Trees, Tree{Nodes: b.nodes})
	}

	forest.Importances = normalizeImportances(rawImportance)
	return forest, nil
}

func classIndexMap(classes []Category) map[Category]int {
	m := make(map[Category]int, len(classes))
	for i, c := range classes {
		m[c] = i
	}
	return m
}

// normalizeImportances scales raw impurity decreases so they sum to 1.
func normalizeImportances(raw []float64) map[string]float64 {
	var sum float64
	for _, v := range raw {
		sum += v
	}
	out := make(map[string]float64, len(raw))
	for i, name := range metrics.FeatureNames {
		if sum > 0 {
			out[name] = raw[i] / sum
		} else {
			out[name] = 0
		}
	}
	return out
}

type treeBuilder struct {
	opts       TrainOptions
	rng        *rand.Rand
	numClasses int
	classIndex map[Category]int
	nodes      []Node
	importance []float64
	total      float64
}

// grow appends the subtree for the given samples and returns its node index.
func (b *treeBuilder) grow(samples []Sample, depth int) int {
	counts := b.classCounts(samples)
	imp := gini(counts, len(samples))

	if depth >= b.opts.MaxDepth || len(samples) < 2*b.opts.MinLeafSize || imp == 0 {
		return b.leaf(counts, len(samples))
	}

	feature, threshold, gain, ok := b.bestSplit(samples, imp)
	if !ok {
		return b.leaf(counts, len(samples))
	}

	var left, right []Sample
	for _, s := range samples {
		if s.Features[feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) < b.opts.MinLeafSize || len(right) < b.opts.MinLeafSize {
		return b.leaf(counts, len(samples))
	}

	// Mean-decrease-in-impurity, weighted by the node's sample share.
	b.importance[feature] += float64(len(samples)) / b.total * gain

	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: feature, Threshold: threshold})
	b.nodes[idx].Left = b.grow(left, depth+1)
	b.nodes[idx].Right = b.grow(right, depth+1)
	return idx
}

func (b *treeBuilder) leaf(counts []int, n int) int {
	probs := make([]float64, b.numClasses)
	if n > 0 {
		for i, c := range counts {
			probs[i] = float64(c) / float64(n)
		}
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: -1, Probs: probs})
	return idx
}

func (b *treeBuilder) classCounts(samples []Sample) []int {
	counts := make([]int, b.numClasses)
	for _, s := range samples {
		counts[b.classIndex[s.Label]]++
	}
	return counts
}

// bestSplit searches a random sqrt-sized feature subset for the split with
// the largest gini gain.
func (b *treeBuilder) bestSplit(samples []Sample, parentImp float64) (feature int, threshold, gain float64, ok bool) {
	k := int(math.Ceil(math.Sqrt(metrics.NumFeatures)))
	candidates := b.rng.Perm(metrics.NumFeatures)[:k]
	sort.Ints(candidates)

	bestGain := 0.0
	n := len(samples)

	order := make([]int, n)
	for _, f := range candidates {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return samples[order[i]].Features[f] < samples[order[j]].Features[f]
		})

		// Sweep left to right, moving one sample at a time into the left
		// partition and scoring the boundary between distinct values.
		lCounts := make([]int, b.numClasses)
		rCounts := b.classCounts(samples)
		for i := 0; i < n-1; i++ {
			ci := b.classIndex[samples[order[i]].Label]
			lCounts[ci]++
			rCounts[ci]--

			cur := samples[order[i]].Features[f]
			next := samples[order[i+1]].Features[f]
			if cur == next {
				continue
			}

			ln, rn := i+1, n-i-1
			childImp := float64(ln)/float64(n)*gini(lCounts, ln) + float64(rn)/float64(n)*gini(rCounts, rn)
			if g := parentImp - childImp; g > bestGain {
				bestGain = g
				feature = f
				threshold = (cur + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, bestGain, ok
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	imp := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		imp -= p * p
	}
	return imp
}
