package ouigen

import "golang.org/x/sync/errgroup"

// minParallelRecords is the record count below which parallel classification
// is not worth the goroutine overhead.
const minParallelRecords = 4096

// classifyPending classifies every pending record and returns the tags
// aligned by record index. With workers > 1 the records are split into
// contiguous shards classified concurrently; because each worker writes only
// its own index range, the result is identical to the single-threaded pass.
func (b *Builder) classifyPending() []Vendor {
	tags := make([]Vendor, len(b.pending))

	workers := b.cfg.workers
	if workers <= 1 || len(b.pending) < minParallelRecords {
		for i := range b.pending {
			tags[i] = Classify(b.pending[i].manufacturer)
		}
		return tags
	}

	shard := (len(b.pending) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(b.pending); start += shard {
		start := start
		end := min(start+shard, len(b.pending))
		g.Go(func() error {
			for i := start; i < end; i++ {
				tags[i] = Classify(b.pending[i].manufacturer)
			}
			return nil
		})
	}
	// Classify is total, so no worker can fail.
	_ = g.Wait()
	return tags
}
