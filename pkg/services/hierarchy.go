package services

import (
	"fmt"
	"math"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Hierarchy generates a capacity-bounded tree and returns its nodes as a
// flat list in generation order. Root count is clamp(ceil(0.1*totalNodes), 1, 5);
// each node below MaxDepth-1 gets a random number of children within
// [MinChildren, MaxChildren] while the node budget allows, depth-first.
//
// After generation the Children lists are populated by scanning the flat list
// and appending each node to its parent. That is a back-reference relation
// for traversal convenience only; the flat result list remains the canonical
// owner of every node.
func (g *Generator) Hierarchy(cfg models.HierarchyConfig) ([]*models.HierarchyNode, error) {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 3
	}
	total := cfg.TotalNodes
	if total <= 0 {
		total = 50
	}
	minChildren, maxChildren := cfg.MinChildren, cfg.MaxChildren
	if maxChildren <= 0 {
		minChildren, maxChildren = 2, 4
	}
	if minChildren > maxChildren {
		minChildren = maxChildren
	}

	rootCount := int(math.Ceil(0.1 * float64(total)))
	if rootCount < 1 {
		rootCount = 1
	}
	if rootCount > 5 {
		rootCount = 5
	}

	var nodes []*models.HierarchyNode

	newNode := func(parentID *string, depth int) *models.HierarchyNode {
		node := &models.HierarchyNode{
			ID:       fmt.Sprintf("node-%d", len(nodes)+1),
			ParentID: parentID,
			Depth:    depth,
		}
		if cfg.Schema.Len() > 0 {
			node.Attributes = g.Generate(cfg.Schema)
		}
		nodes = append(nodes, node)
		return node
	}

	var descend func(parent *models.HierarchyNode)
	descend = func(parent *models.HierarchyNode) {
		if parent.Depth >= maxDepth-1 {
			return
		}
		children := intBetween(g.rng, minChildren, maxChildren)
		for i := 0; i < children && len(nodes) < total; i++ {
			child := newNode(&parent.ID, parent.Depth+1)
			descend(child)
		}
	}

	for i := 0; i < rootCount && len(nodes) < total; i++ {
		root := newNode(nil, 0)
		descend(root)
	}

	// Back-reference pass: index by id, then attach each node to its parent.
	byID := make(map[string]*models.HierarchyNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	for _, n := range nodes {
		if n.ParentID == nil {
			continue
		}
		if parent, ok := byID[*n.ParentID]; ok {
			parent.Children = append(parent.Children, n)
		}
	}

	return nodes, nil
}
