package services

import (
	"iter"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Stream returns a pull-based lazy sequence of n records. Values are produced
// one at a time with control returning to the consumer between items; there
// is no parallelism and no buffering beyond the one in-flight record. The
// consumer cancels by simply stopping iteration, which leaves no dangling
// state: the sequence holds nothing but its loop counter.
func (g *Generator) Stream(schema models.SchemaSpec, n int) iter.Seq[models.Record] {
	return func(yield func(models.Record) bool) {
		for i := 0; i < n; i++ {
			if !yield(g.Generate(schema)) {
				return
			}
		}
	}
}
