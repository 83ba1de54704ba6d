package classifier

import (
	"math"
	"math/rand"
	"sort"
)

// Forest hyperparameters, mirroring the original model configuration
const (
	numTrees        = 100
	maxDepth        = 10
	minSamplesSplit = 5
	randomSeed      = 42
)

// treeNode is one node of a decision tree in flattened form.
// Leaf nodes have Left == -1; ClassCounts holds the training-sample
// distribution used for probability estimates.
type treeNode struct {
	Feature     int       `json:"feature"`
	Threshold   float64   `json:"threshold"`
	Left        int       `json:"left"`
	Right       int       `json:"right"`
	ClassCounts []float64 `json:"class_counts"`
}

// tree is a single decision tree stored as a node array rooted at index 0
type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// forest is a bagged ensemble of decision trees
type forest struct {
	Trees      []tree `json:"trees"`
	NumClasses int    `json:"num_classes"`
}

// sample is one labeled training example
type sample struct {
	features []float64
	label    int
}

// trainForest fits a bagged tree ensemble over the given samples.
// Bootstrap sampling is seeded deterministically so training is reproducible.
func trainForest(samples []sample, numClasses int) *forest {
	f := &forest{NumClasses: numClasses, Trees: make([]tree, 0, numTrees)}

	for i := 0; i < numTrees; i++ {
		rng := rand.New(rand.NewSource(randomSeed + int64(i)))
		boot := make([]sample, len(samples))
		for j := range boot {
			boot[j] = samples[rng.Intn(len(samples))]
		}

		t := tree{}
		buildNode(&t, boot, numClasses, 0)
		f.Trees = append(f.Trees, t)
	}

	return f
}

// buildNode grows the tree recursively and returns the index of the new node
func buildNode(t *tree, samples []sample, numClasses, depth int) int {
	counts := classCounts(samples, numClasses)
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, treeNode{Left: -1, Right: -1, ClassCounts: counts})

	if depth >= maxDepth || len(samples) < minSamplesSplit || isPure(counts) {
		return idx
	}

	feature, threshold, ok := bestSplit(samples, numClasses)
	if !ok {
		return idx
	}

	var left, right []sample
	for _, s := range samples {
		if s.features[feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return idx
	}

	t.Nodes[idx].Feature = feature
	t.Nodes[idx].Threshold = threshold
	t.Nodes[idx].Left = buildNode(t, left, numClasses, depth+1)
	t.Nodes[idx].Right = buildNode(t, right, numClasses, depth+1)
	return idx
}

// bestSplit finds the feature/threshold pair with the lowest weighted Gini impurity
func bestSplit(samples []sample, numClasses int) (int, float64, bool) {
	bestGini := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0
	numFeatures := len(samples[0].features)

	for feature := 0; feature < numFeatures; feature++ {
		values := make([]float64, 0, len(samples))
		seen := map[float64]bool{}
		for _, s := range samples {
			v := s.features[feature]
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		if len(values) < 2 {
			continue
		}
		sort.Float64s(values)

		for i := 0; i < len(values)-1; i++ {
			threshold := (values[i] + values[i+1]) / 2

			leftCounts := make([]float64, numClasses)
			rightCounts := make([]float64, numClasses)
			leftTotal, rightTotal := 0.0, 0.0
			for _, s := range samples {
				if s.features[feature] <= threshold {
					leftCounts[s.label]++
					leftTotal++
				} else {
					rightCounts[s.label]++
					rightTotal++
				}
			}

			total := leftTotal + rightTotal
			gini := (leftTotal/total)*giniImpurity(leftCounts, leftTotal) +
				(rightTotal/total)*giniImpurity(rightCounts, rightTotal)

			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

// giniImpurity computes 1 - sum(p_i^2) over class proportions
func giniImpurity(counts []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := c / total
		impurity -= p * p
	}
	return impurity
}

// classCounts tallies labels into a per-class count vector
func classCounts(samples []sample, numClasses int) []float64 {
	counts := make([]float64, numClasses)
	for _, s := range samples {
		counts[s.label]++
	}
	return counts
}

// isPure reports whether all samples belong to one class
func isPure(counts []float64) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// predictProba averages per-tree leaf class distributions into class probabilities
func (f *forest) predictProba(features []float64) []float64 {
	probs := make([]float64, f.NumClasses)
	for _, t := range f.Trees {
		leaf := t.leafFor(features)
		total := 0.0
		for _, c := range leaf.ClassCounts {
			total += c
		}
		if total == 0 {
			continue
		}
		for i, c := range leaf.ClassCounts {
			probs[i] += c / total / float64(len(f.Trees))
		}
	}
	return probs
}

// leafFor walks the tree to the leaf matching the feature vector
func (t *tree) leafFor(features []float64) *treeNode {
	idx := 0
	for {
		node := &t.Nodes[idx]
		if node.Left == -1 {
			return node
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}
