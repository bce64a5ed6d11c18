package services

import (
	"fmt"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Graph generates a degree-constrained random graph. Nodes come from the
// node schema via field inference with sequential ids. Edges are drawn per
// node pair with ConnectionProbability, deduplicated under the canonical key
// (sorted id pair for undirected, ordered pair for directed), with no
// self-loops and per-node degree capped at MaxDegree.
//
// Nodes still under MinDegree afterwards get randomly sampled targets until
// the minimum is met or the edge budget (NodeCount*MaxDegree) is exhausted.
// The budget cap makes minimum degree a best-effort guarantee: infeasible
// configurations degrade silently instead of looping forever.
func (g *Generator) Graph(cfg models.GraphConfig) (*models.Graph, error) {
	nodeCount := cfg.NodeCount
	if nodeCount <= 0 {
		nodeCount = 10
	}
	probability := cfg.ConnectionProbability
	if probability <= 0 {
		probability = 0.3
	}
	maxDegree := cfg.MaxDegree
	if maxDegree <= 0 {
		maxDegree = nodeCount - 1
	}
	minDegree := cfg.MinDegree
	if minDegree > maxDegree {
		minDegree = maxDegree
	}

	nodes := make([]models.GraphNode, nodeCount)
	for i := range nodes {
		nodes[i] = models.GraphNode{ID: fmt.Sprintf("node-%d", i)}
		if cfg.NodeSchema.Len() > 0 {
			nodes[i].Attributes = g.Generate(cfg.NodeSchema)
		}
	}

	edgeBudget := nodeCount * maxDegree
	degrees := make([]int, nodeCount)
	seen := make(map[string]bool)
	var edges []models.GraphEdge

	canonicalKey := func(i, j int) string {
		if !cfg.Directed && i > j {
			i, j = j, i
		}
		return fmt.Sprintf("%d|%d", i, j)
	}

	addEdge := func(i, j int) {
		edges = append(edges, models.GraphEdge{
			ID:       fmt.Sprintf("edge-%d", len(edges)),
			Source:   nodes[i].ID,
			Target:   nodes[j].ID,
			Weight:   round3(floatBetween(g.rng, 0.1, 1.0)),
			Directed: cfg.Directed,
		})
		seen[canonicalKey(i, j)] = true
		degrees[i]++
		degrees[j]++
	}

	for i := 0; i < nodeCount; i++ {
		for j := 0; j < nodeCount; j++ {
			if i == j || degrees[i] >= maxDegree || degrees[j] >= maxDegree {
				continue
			}
			if seen[canonicalKey(i, j)] {
				continue
			}
			if g.rng.Float64() < probability {
				addEdge(i, j)
			}
		}
	}

	// Best-effort minimum degree pass, bounded by the edge budget.
	for i := 0; i < nodeCount && len(edges) < edgeBudget; i++ {
		attempts := 0
		for degrees[i] < minDegree && attempts < edgeBudget && len(edges) < edgeBudget {
			attempts++
			j := g.rng.Intn(nodeCount)
			if j == i || degrees[j] >= maxDegree || seen[canonicalKey(i, j)] {
				continue
			}
			addEdge(i, j)
		}
	}

	degreeFactor := 2
	if cfg.Directed {
		degreeFactor = 1
	}
	return &models.Graph{
		Nodes: nodes,
		Edges: edges,
		Metadata: models.GraphMetadata{
			NodeCount:     nodeCount,
			EdgeCount:     len(edges),
			Directed:      cfg.Directed,
			AverageDegree: float64(len(edges)*degreeFactor) / float64(nodeCount),
		},
	}, nil
}
