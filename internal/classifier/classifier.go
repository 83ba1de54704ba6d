// Package classifier predicts learning difficulty for skill gaps using a
// bagged decision-tree ensemble over three numeric features.
package classifier

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jonathan/candidate-fit/internal/types"
)

// testFraction is the share of training rows held out for evaluation
const testFraction = 0.2

// difficultyToDays maps a predicted label to estimated learning days
var difficultyToDays = map[types.Difficulty]int{
	types.DifficultyEasy:   30,
	types.DifficultyMedium: 60,
	types.DifficultyHard:   120,
}

// defaultLearningDays is used when a label is outside the known set
const defaultLearningDays = 60

// TrainingDataError indicates the training table is missing or malformed.
// This is fatal for training; prediction can still work from a saved artifact.
type TrainingDataError struct {
	Path    string
	Message string
}

func (e *TrainingDataError) Error() string {
	return fmt.Sprintf("training data error (%s): %s", e.Path, e.Message)
}

// Prediction is the output of a difficulty prediction
type Prediction struct {
	Difficulty            types.Difficulty `json:"difficulty"`
	Confidence            float64          `json:"confidence"`
	EstimatedLearningDays int              `json:"estimated_learning_days"`
}

// TrainReport summarizes a completed training run
type TrainReport struct {
	TrainAccuracy float64  `json:"train_accuracy"`
	TestAccuracy  float64  `json:"test_accuracy"`
	NumSamples    int      `json:"num_samples"`
	Classes       []string `json:"classes"`
}

// Classifier predicts skill-gap difficulty. The zero value is not usable;
// construct with New. Safe for concurrent prediction once trained or loaded;
// retraining is serialized internally.
type Classifier struct {
	mu      sync.RWMutex
	forest  *forest
	classes []string

	trainingPath string
	modelPath    string
}

// New creates a classifier reading training data from trainingPath and
// persisting/loading its model artifact at modelPath. An empty modelPath
// disables persistence.
func New(trainingPath, modelPath string) *Classifier {
	return &Classifier{
		trainingPath: trainingPath,
		modelPath:    modelPath,
	}
}

// IsTrained reports whether a model is available in memory
func (c *Classifier) IsTrained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.forest != nil
}

// Train fits a fresh model from the training table. A missing or malformed
// table is a hard error; no synthetic fallback data is generated. When a
// model path is configured, the fitted model is persisted, but persistence
// failures do not invalidate the in-memory model.
func (c *Classifier) Train() (*TrainReport, error) {
	ds, err := loadTrainingTable(c.trainingPath)
	if err != nil {
		return nil, err
	}

	trainSet, testSet := trainTestSplit(ds.samples, testFraction, randomSeed)

	f := trainForest(trainSet, len(ds.classes))

	report := &TrainReport{
		TrainAccuracy: accuracy(f, trainSet),
		TestAccuracy:  accuracy(f, testSet),
		NumSamples:    len(ds.samples),
		Classes:       ds.classes,
	}

	c.mu.Lock()
	c.forest = f
	c.classes = ds.classes
	c.mu.Unlock()

	if c.modelPath != "" {
		if err := c.SaveModel(); err != nil {
			return report, fmt.Errorf("model trained but not persisted: %w", err)
		}
	}

	return report, nil
}

// PredictDifficulty predicts the learning difficulty for a skill gap.
// hasBase is 0 or 1; skillSimilarity and domainOverlap are in [0,1].
// Called before any model exists it loads the persisted artifact, or trains
// a fresh model when no artifact is available.
func (c *Classifier) PredictDifficulty(hasBase int, skillSimilarity, domainOverlap float64) (*Prediction, error) {
	if err := c.ensureModel(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	features := []float64{float64(hasBase), skillSimilarity, domainOverlap}
	probs := c.forest.predictProba(features)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	difficulty := types.Difficulty(c.classes[best])
	days, ok := difficultyToDays[difficulty]
	if !ok {
		days = defaultLearningDays
	}

	return &Prediction{
		Difficulty:            difficulty,
		Confidence:            round2(probs[best]),
		EstimatedLearningDays: days,
	}, nil
}

// ensureModel makes a model available, preferring a persisted artifact and
// falling back to training when none exists.
func (c *Classifier) ensureModel() error {
	if c.IsTrained() {
		return nil
	}

	if c.modelPath != "" {
		if err := c.LoadModel(); err == nil {
			return nil
		} else if _, isMissing := errArtifactMissing(err); !isMissing {
			return err
		}
	}

	_, err := c.Train()
	return err
}

// accuracy computes the fraction of samples the forest classifies correctly
func accuracy(f *forest, samples []sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	correct := 0
	for _, s := range samples {
		probs := f.predictProba(s.features)
		best := 0
		for i, p := range probs {
			if p > probs[best] {
				best = i
			}
		}
		if best == s.label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples))
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// newSeededRand returns a deterministic rand source for reproducible splits
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
