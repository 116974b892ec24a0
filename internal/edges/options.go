package edges

import "runtime"

const defaultChunkSize = 64

// Options configures edge construction.
type Options struct {
	// Workers bounds the number of concurrent broad tier chunks.
	// Defaults to GOMAXPROCS.
	Workers int

	// ChunkSize is the number of leaf indices per broad tier task.
	ChunkSize int

	// Dilation grows every leaf box before the contact test.
	Dilation float32

	// MaxEdgeLength skips broad tier pairs whose centers are farther apart.
	// Zero disables the guard.
	MaxEdgeLength float32
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	if o.Dilation < 0 {
		o.Dilation = 0
	}
	if o.MaxEdgeLength < 0 {
		o.MaxEdgeLength = 0
	}
	return o
}
