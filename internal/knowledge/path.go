package knowledge

import (
	"sort"

	"github.com/jonathan/candidate-fit/internal/types"
)

// weeksPerStep is the learning-time estimate for each step in a path
const weeksPerStep = 2

// FindLearningPath computes the shortest prerequisite path from any known
// skill to the target. Paths are compared by edge count; ties keep the first
// path found. When no known skill reaches the target, the fallback sequence
// is the target's missing direct prerequisites followed by the target itself.
func (g *Graph) FindLearningPath(currentSkills []string, targetSkill string) types.LearningPath {
	known := normalizeAll(currentSkills)
	target := Normalize(targetSkill)

	var best []string
	if g.hasNode(target) {
		for _, current := range known {
			if !g.hasNode(current) {
				continue
			}
			path := g.shortestPath(current, target)
			if path == nil {
				continue
			}
			if best == nil || len(path) < len(best) {
				best = path
			}
		}
	}

	if best != nil {
		steps := len(best) - 1
		next := target
		if len(best) > 1 {
			next = best[1]
		}
		return types.LearningPath{
			PathExists:       true,
			LearningSequence: best,
			TotalSteps:       steps,
			EstimatedWeeks:   steps * weeksPerStep,
			NextSkillToLearn: next,
		}
	}

	missing := g.missingPrerequisites(known, target)
	sequence := append(append([]string{}, missing...), target)
	next := target
	if len(missing) > 0 {
		next = missing[0]
	}
	return types.LearningPath{
		PathExists:       false,
		LearningSequence: sequence,
		TotalSteps:       len(sequence),
		EstimatedWeeks:   len(sequence) * weeksPerStep,
		NextSkillToLearn: next,
	}
}

// shortestPath runs an unweighted BFS over prerequisite edges from start to
// target. Returns nil if no path exists.
func (g *Graph) shortestPath(start, target string) []string {
	if start == target {
		return []string{start}
	}

	visited := map[string]bool{start: true}
	parent := map[string]string{}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, next := range g.successors[node] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = node
			if next == target {
				return reconstructPath(parent, start, target)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstructPath walks parent pointers back from target to start
func reconstructPath(parent map[string]string, start, target string) []string {
	path := []string{target}
	for node := target; node != start; {
		node = parent[node]
		path = append(path, node)
	}
	// Reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// GetTransferableSkills ranks candidate opportunities by readiness, answering
// "given what I know, which targets am I closest to".
func (g *Graph) GetTransferableSkills(currentSkills []string, opportunities []string) []types.TransferableSkill {
	ranked := make([]types.TransferableSkill, 0, len(opportunities))
	for _, opp := range opportunities {
		readiness := g.CalculateReadiness(currentSkills, opp)
		ranked = append(ranked, types.TransferableSkill{
			Opportunity:    opp,
			ReadinessScore: readiness.ReadinessScore,
			ReadinessLevel: readiness.ReadinessLevel,
			EstimatedWeeks: readiness.EstimatedWeeks,
			MissingSkills:  readiness.MissingPrerequisites,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ReadinessScore > ranked[j].ReadinessScore
	})

	return ranked
}
