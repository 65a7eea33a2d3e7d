package ouigen

// DefaultChunkSize is the default number of entries per chunk. It bounds the
// size of any single emitted array in the generated artifact.
const DefaultChunkSize = 250

// BuildOption is a functional option for configuring builds.
type BuildOption func(*buildConfig)

type buildConfig struct {
	chunkSize int
	workers   int
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		chunkSize: DefaultChunkSize,
		workers:   1, // Default to single-threaded; use WithWorkers(n) to parallelize
	}
}

// WithChunkSize sets the number of entries per chunk. Every chunk holds
// exactly this many entries except possibly the last.
func WithChunkSize(n int) BuildOption {
	return func(c *buildConfig) {
		c.chunkSize = n
	}
}

// WithWorkers sets the number of goroutines used to classify manufacturer
// strings during Build. Classification order never affects the result, so
// parallel builds are byte-identical to single-threaded ones.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		c.workers = n
	}
}
