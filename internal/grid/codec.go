package grid

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// codecVersion is bumped whenever the encoded layout changes.
const codecVersion = 2

// encodedGraph is the on-disk layout: msgpack inside a zstd stream.
type encodedGraph struct {
	Version int         `msgpack:"v"`
	Lattice *Lattice    `msgpack:"lattice,omitempty"`
	Nodes   []Adjacency `msgpack:"nodes"`
}

// Encode writes g to w as zstd-compressed msgpack.
func Encode(w io.Writer, g *Graph) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := msgpack.NewEncoder(zw).Encode(encodedGraph{Version: codecVersion, Lattice: g.lattice, Nodes: g.Adjacency()}); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	return zw.Close()
}

// Decode reads a graph previously written by Encode, lattice settings
// included.
func Decode(r io.Reader) (*Graph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var eg encodedGraph
	if err := msgpack.NewDecoder(zr).Decode(&eg); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}
	if eg.Version != codecVersion {
		return nil, fmt.Errorf("unsupported graph encoding version %d", eg.Version)
	}
	g, err := FromAdjacency(eg.Nodes)
	if err != nil {
		return nil, err
	}
	g.lattice = eg.Lattice
	return g, nil
}
