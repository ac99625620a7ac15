// Package chunkstore owns the dataset for a run and exposes it as dense,
// fixed-size chunks. Chunk descriptors partition [0,N) exactly; the final
// chunk absorbs the remainder when the dataset does not divide evenly.
package chunkstore

import (
	"fmt"
)

// Chunk describes one contiguous, non-overlapping slice of the dataset.
// Descriptors are immutable; content is read from the Store.
type Chunk struct {
	ID     int
	Offset int
	Length int
}

// Store holds the full dataset. Immutable once created.
type Store struct {
	data   []int32
	chunks []Chunk
}

// New builds a store over data partitioned into chunkSize-element chunks.
func New(data []int32, chunkSize int) (*Store, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("chunkstore: empty dataset")
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunkstore: chunk size %d must be positive", chunkSize)
	}
	if chunkSize > len(data) {
		return nil, fmt.Errorf("chunkstore: chunk size %d exceeds dataset size %d", chunkSize, len(data))
	}

	n := len(data)
	numChunks := (n + chunkSize - 1) / chunkSize
	chunks := make([]Chunk, numChunks)
	for i := range chunks {
		offset := i * chunkSize
		length := chunkSize
		if i == numChunks-1 {
			length = n - offset
		}
		chunks[i] = Chunk{ID: i, Offset: offset, Length: length}
	}
	return &Store{data: data, chunks: chunks}, nil
}

// NewSequential builds a store over the dataset 0,1,...,n-1, the seed data
// the reference run uses when no input is supplied.
func NewSequential(n, chunkSize int) (*Store, error) {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}
	return New(data, chunkSize)
}

// Len returns the dataset element count.
func (s *Store) Len() int {
	return len(s.data)
}

// NumChunks returns the number of chunk descriptors.
func (s *Store) NumChunks() int {
	return len(s.chunks)
}

// Chunks returns every chunk descriptor in ascending ID order.
func (s *Store) Chunks() []Chunk {
	out := make([]Chunk, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// Chunk returns the descriptor for one chunk ID.
func (s *Store) Chunk(id int) (Chunk, bool) {
	if id < 0 || id >= len(s.chunks) {
		return Chunk{}, false
	}
	return s.chunks[id], true
}

// Read returns the elements a chunk covers. The returned slice aliases the
// dataset and must not be mutated.
func (s *Store) Read(c Chunk) []int32 {
	return s.data[c.Offset : c.Offset+c.Length]
}
