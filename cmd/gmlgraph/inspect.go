package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zaporter/gml-parser/gmlparser"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <graph.gml>",
	Short: "Parse a GML file and print a summary",
	Long:  "Parse a GML file into a typed graph and print its id, label, directedness, and node/edge inventory.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	graph, err := gmlparser.ParseGraph(src)
	if err != nil {
		return fmt.Errorf("parsing graph: %w", err)
	}

	printGraphSummary(graph, verbose)
	return nil
}

// printGraphSummary prints a summary of the parsed graph.
func printGraphSummary(graph *gmlparser.Graph, verbose bool) {
	if graph.ID != nil {
		fmt.Fprintf(os.Stderr, "  ID: %d\n", *graph.ID)
	}
	if graph.Label != nil {
		fmt.Fprintf(os.Stderr, "  Label: %s\n", *graph.Label)
	}
	if graph.Directed != nil {
		fmt.Fprintf(os.Stderr, "  Directed: %t\n", *graph.Directed)
	}
	fmt.Fprintf(os.Stderr, "  Nodes: %d\n", len(graph.Nodes))
	fmt.Fprintf(os.Stderr, "  Edges: %d\n", len(graph.Edges))

	if !verbose {
		return
	}

	for _, node := range graph.Nodes {
		label := ""
		if node.Label != nil {
			label = *node.Label
		}
		fmt.Fprintf(os.Stderr, "    node %d [%s]\n", node.ID, label)
	}
	for _, edge := range graph.Edges {
		label := ""
		if edge.Label != nil {
			label = *edge.Label
		}
		fmt.Fprintf(os.Stderr, "    edge %d -> %d [%s]\n", edge.Source, edge.Target, label)
	}
	if attrs := graph.Attributes(); len(attrs) > 0 {
		fmt.Fprintf(os.Stderr, "  Other attributes:\n")
		for _, attr := range attrs {
			fmt.Fprintf(os.Stderr, "    %s = %s\n", attr.Key, attr.Value)
		}
	}
}
