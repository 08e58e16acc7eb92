package cmd

import (
	"fmt"

	"github.com/rick-howell/ricklib/graph"
	"github.com/spf13/cobra"
)

var graphAdj bool

var graphCmd = &cobra.Command{
	Use:   "graph <file.mat>",
	Short: "Summarize graphs from an adjacency-matrix file",
	Long: `Loads a .mat file of blank-line-separated adjacency matrices
(the houseofgraphs.org export format) and prints each graph.`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&graphAdj, "adj", false, "print adjacency matrices")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(_ *cobra.Command, args []string) error {
	graphs, err := graph.LoadMatFile(args[0])
	if err != nil {
		return err
	}
	logVerbose("loaded %d graphs from %s", len(graphs), args[0])
	for i, g := range graphs {
		fmt.Printf("Graph %d: %d vertices, %d edges\n", i+1, len(g.V), len(g.E))
		if !graphAdj {
			continue
		}
		for _, row := range g.AdjMatrix() {
			for j, v := range row {
				if j > 0 {
					fmt.Print(" ")
				}
				fmt.Printf("%g", v)
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}
