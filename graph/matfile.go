package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadMatFile reads a series of adjacency matrices separated by blank
// lines, one graph per matrix — the format houseofgraphs.org exports.
func LoadMatFile(path string) ([]*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return parseMat(f)
}

func parseMat(r io.Reader) ([]*Graph, error) {
	var graphs []*Graph
	var adj [][]float64

	flush := func() error {
		if len(adj) == 0 {
			return nil
		}
		g := NewIntegerNamed()
		if err := g.ImportAdjMatrix(adj, false); err != nil {
			return err
		}
		graphs = append(graphs, g)
		adj = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		var row []float64
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad entry %q: %w", line, field, err)
			}
			row = append(row, v)
		}
		adj = append(adj, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return graphs, nil
}
