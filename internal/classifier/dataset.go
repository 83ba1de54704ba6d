package classifier

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// featureColumns are the training-table columns used as model inputs, in order
var featureColumns = []string{"has_base", "skill_similarity", "domain_overlap"}

// labelColumn is the training-table column holding the difficulty label
const labelColumn = "difficulty"

// dataset holds parsed training examples plus the sorted class vocabulary
type dataset struct {
	samples []sample
	classes []string
}

// loadTrainingTable reads the skill-relationship CSV into a dataset.
// The file must have a header row containing the three feature columns and
// the difficulty label column.
func loadTrainingTable(path string) (*dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TrainingDataError{Path: path, Message: "training data not found"}
		}
		return nil, fmt.Errorf("failed to open training data %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse training CSV %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, &TrainingDataError{Path: path, Message: "training data has no rows"}
	}

	// Resolve column positions from the header
	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, col := range append(append([]string{}, featureColumns...), labelColumn) {
		if _, ok := colIdx[col]; !ok {
			return nil, &TrainingDataError{Path: path, Message: fmt.Sprintf("missing column %q", col)}
		}
	}

	// First pass: collect the label vocabulary, sorted for a stable encoding
	classSet := map[string]bool{}
	for _, row := range records[1:] {
		classSet[row[colIdx[labelColumn]]] = true
	}
	classes := make([]string, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	classToIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classToIdx[c] = i
	}

	samples := make([]sample, 0, len(records)-1)
	for rowNum, row := range records[1:] {
		features := make([]float64, len(featureColumns))
		for i, col := range featureColumns {
			v, err := strconv.ParseFloat(row[colIdx[col]], 64)
			if err != nil {
				return nil, &TrainingDataError{
					Path:    path,
					Message: fmt.Sprintf("row %d: invalid %s value %q", rowNum+2, col, row[colIdx[col]]),
				}
			}
			features[i] = v
		}
		samples = append(samples, sample{features: features, label: classToIdx[row[colIdx[labelColumn]]]})
	}

	return &dataset{samples: samples, classes: classes}, nil
}

// trainTestSplit shuffles deterministically and splits off a held-out fraction
func trainTestSplit(samples []sample, testFraction float64, seed int64) (train, test []sample) {
	shuffled := make([]sample, len(samples))
	copy(shuffled, samples)

	rng := newSeededRand(seed)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	testSize := int(float64(len(shuffled)) * testFraction)
	if testSize < 1 && len(shuffled) > 1 {
		testSize = 1
	}
	return shuffled[testSize:], shuffled[:testSize]
}
