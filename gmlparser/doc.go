// Package gmlparser implements a reader for Graph Modelling Language (GML)
// files.
//
// GML is a line-oriented, bracket-delimited format: a document is a sequence
// of key/value entries, where a value is a quoted string, a signed integer,
// or a nested [ ... ] object. Keys may repeat (a graph typically contains
// many "node" and "edge" entries), so the parsed representation is an
// ordered list of pairs rather than a map.
//
// Parsing happens in two stages:
//
//   - Lexer + Parse: convert raw bytes into a generic attribute tree
//     (Object), preserving entry order and duplicate keys.
//   - BuildGraph: consume the attribute tree into a typed Graph containing
//     Nodes and Edges. Fields the extractor does not recognize stay attached
//     to the produced entity as residual attributes, reachable through
//     GetAttribute and TakeAttribute.
//
// Usage:
//
//	graph, err := gmlparser.ParseGraph(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(graph.Nodes), len(graph.Edges))
//
// One top-level graph per document. Values are strings and 64-bit integers
// only; booleans such as "directed" are integers interpreted 1 = true.
package gmlparser
