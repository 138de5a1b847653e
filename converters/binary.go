// SPDX-License-Identifier: MIT
// Package: vcover/converters
//
// binary.go - compact binary graph format.
//
// Layout (all integers big-endian):
//
//	magic      4 bytes  BF BF BF BF
//	n          u32      vertex count
//	m          u32      edge count
//	n times    u32 label, u32 offset
//	2m times   neighbor id, u16 when n <= 65536, else u32
//
// The offsets and neighbor array are the core.Graph layout, so reading is a
// validation pass plus a rebuild through core.Builder.

package converters

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/vcover/core"
)

var magic = [4]byte{0xBF, 0xBF, 0xBF, 0xBF}

// narrowLimit is the largest vertex count whose ids fit in 16 bits.
const narrowLimit = 1 << 16

// WriteBinary writes g in the compact binary format.
func WriteBinary(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	n := g.VertexCount()
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	hdr := []uint32{uint32(n), uint32(g.EdgeCount())}
	if err := binary.Write(bw, binary.BigEndian, hdr); err != nil {
		return err
	}
	labels, offsets := g.Labels(), g.Offsets()
	for v := 0; v < n; v++ {
		if err := binary.Write(bw, binary.BigEndian, [2]uint32{labels[v], offsets[v]}); err != nil {
			return err
		}
	}
	nb := g.NeighborArray()
	if n <= narrowLimit {
		narrow := make([]uint16, len(nb))
		for i, x := range nb {
			narrow[i] = uint16(x)
		}
		if err := binary.Write(bw, binary.BigEndian, narrow); err != nil {
			return err
		}
	} else if err := binary.Write(bw, binary.BigEndian, nb); err != nil {
		return err
	}

	return bw.Flush()
}

// readChunk bounds a single allocation while reading a table whose length
// comes from the header, so a lying header costs at most one chunk.
const readChunk = 1 << 14

// readTable reads count fixed-size records, growing the result only as
// records actually arrive.
func readTable[T any](r io.Reader, count int) ([]T, error) {
	out := make([]T, 0, min(count, readChunk))
	for len(out) < count {
		buf := make([]T, min(count-len(out), readChunk))
		if err := binary.Read(r, binary.BigEndian, buf); err != nil {
			return nil, err
		}
		out = append(out, buf...)
	}

	return out, nil
}

// binarySize returns the encoded length of a graph with n vertices and m
// edges.
func binarySize(n, m int) int {
	width := 4
	if n <= narrowLimit {
		width = 2
	}

	return len(magic) + 8 + 8*n + width*2*m
}

// ReadBinary parses the compact binary format. Beyond the layout it checks
// that every neighbor run is strictly ascending, holds no self-loop and is
// mirrored by the run of each neighbor.
func ReadBinary(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)
	var got [4]byte
	if _, err := io.ReadFull(br, got[:]); err != nil {
		return nil, fmt.Errorf("ReadBinary: magic: %w", ErrBadMagic)
	}
	if got != magic {
		return nil, fmt.Errorf("ReadBinary: % x: %w", got, ErrBadMagic)
	}
	var hdr [2]uint32
	if err := binary.Read(br, binary.BigEndian, &hdr); err != nil {
		return nil, corrupt("header", err)
	}
	n, m := int(hdr[0]), int(hdr[1])

	pairs, err := readTable[[2]uint32](br, n)
	if err != nil {
		return nil, corrupt("vertex table", err)
	}
	var nb []uint32
	if n <= narrowLimit {
		narrow, err := readTable[uint16](br, 2*m)
		if err != nil {
			return nil, corrupt("neighbors", err)
		}
		nb = make([]uint32, len(narrow))
		for i, x := range narrow {
			nb[i] = uint32(x)
		}
	} else if nb, err = readTable[uint32](br, 2*m); err != nil {
		return nil, corrupt("neighbors", err)
	}

	run := func(v int) []uint32 {
		end := 2 * m
		if v+1 < n {
			end = int(pairs[v+1][1])
		}
		return nb[pairs[v][1]:end]
	}
	for v := 0; v < n; v++ {
		start, end := int(pairs[v][1]), 2*m
		if v+1 < n {
			end = int(pairs[v+1][1])
		}
		if (v == 0 && start != 0) || start > end || end > 2*m {
			return nil, corrupt(fmt.Sprintf("offset of vertex %d", v), nil)
		}
		for i, w := range nb[start:end] {
			if int(w) >= n || int(w) == v {
				return nil, corrupt(fmt.Sprintf("neighbor %d of vertex %d", w, v), nil)
			}
			if i > 0 && w <= nb[start+i-1] {
				return nil, corrupt(fmt.Sprintf("neighbors of vertex %d not ascending", v), nil)
			}
		}
	}

	b := core.NewBuilder()
	for v := 0; v < n; v++ {
		b.AddVertex(pairs[v][0])
	}
	for v := 0; v < n; v++ {
		for _, w := range run(v) {
			if _, ok := slices.BinarySearch(run(int(w)), uint32(v)); !ok {
				return nil, corrupt(fmt.Sprintf("edge {%d, %d} not mirrored", v, w), nil)
			}
			if int(w) < v {
				continue
			}
			if err := b.AddEdge(pairs[v][0], pairs[w][0]); err != nil {
				return nil, corrupt("edge", err)
			}
		}
	}
	g := b.Build()
	if g.VertexCount() != n || g.EdgeCount() != m {
		return nil, corrupt("counts", nil)
	}

	return g, nil
}

func corrupt(what string, err error) error {
	if err != nil {
		return fmt.Errorf("ReadBinary: %s: %v: %w", what, err, ErrCorrupt)
	}

	return fmt.Errorf("ReadBinary: %s: %w", what, ErrCorrupt)
}

// SaveBinaryFile writes g to path in the compact binary format.
func SaveBinaryFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// LoadBinaryFile reads a compact binary graph from path.
func LoadBinaryFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBinary(f)
}

// LoadFile reads path as binary when it starts with the binary magic and as
// DIMACS otherwise. Options apply to DIMACS input only.
func LoadFile(path string, opts ...LoadOption) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, magic[:]) {
		if len(data) >= len(magic)+8 {
			n := int(binary.BigEndian.Uint32(data[4:]))
			m := int(binary.BigEndian.Uint32(data[8:]))
			if len(data) < binarySize(n, m) {
				return nil, corrupt(fmt.Sprintf("%s: %d bytes for n=%d m=%d", path, len(data), n, m), nil)
			}
		}
		return ReadBinary(bytes.NewReader(data))
	}

	return LoadDIMACS(bytes.NewReader(data), opts...)
}
