package gmlparser

// ParseGraph parses GML source text and extracts the typed graph in one
// call. Equivalent to Parse followed by BuildGraph.
func ParseGraph(src []byte) (*Graph, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return BuildGraph(root)
}

// BuildGraph extracts a typed Graph from the root attribute tree. The root
// must contain a "graph" entry holding an object; multiple graphs per
// document are not supported, only the first is read.
//
// BuildGraph consumes entries from the tree as it recognizes them. On any
// failure the whole extraction is aborted and no partial Graph is returned;
// the first problem in traversal order (graph fields, then nodes, then
// edges) is the one reported.
func BuildGraph(root *Object) (*Graph, error) {
	attr, ok := root.Take("graph")
	if !ok {
		return nil, &MissingGraphError{}
	}
	if attr.Value.Kind != ValueObject {
		return nil, mismatch("graph", ValueObject, attr)
	}
	return buildGraph(attr.Value.Obj)
}

func buildGraph(obj *Object) (*Graph, error) {
	id, err := takeInt(obj, "id")
	if err != nil {
		return nil, err
	}

	// "directed" is an integer by GML convention: 1 means directed,
	// anything else means undirected.
	directedInt, err := takeInt(obj, "directed")
	if err != nil {
		return nil, err
	}
	var directed *bool
	if directedInt != nil {
		d := *directedInt == 1
		directed = &d
	}

	label, err := takeString(obj, "label")
	if err != nil {
		return nil, err
	}

	var nodes []*Node
	for {
		attr, ok := obj.Take("node")
		if !ok {
			break
		}
		if attr.Value.Kind != ValueObject {
			return nil, mismatch("node", ValueObject, attr)
		}
		node, err := buildNode(attr.Value.Obj)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	var edges []*Edge
	for {
		attr, ok := obj.Take("edge")
		if !ok {
			break
		}
		if attr.Value.Kind != ValueObject {
			return nil, mismatch("edge", ValueObject, attr)
		}
		edge, err := buildEdge(attr.Value.Obj)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	return &Graph{
		ID:       id,
		Directed: directed,
		Label:    label,
		Nodes:    nodes,
		Edges:    edges,
		attrs:    obj.Attrs,
	}, nil
}

func buildNode(obj *Object) (*Node, error) {
	id, err := requireInt(obj, "node", "id")
	if err != nil {
		return nil, err
	}
	label, err := takeString(obj, "label")
	if err != nil {
		return nil, err
	}
	return &Node{ID: id, Label: label, attrs: obj.Attrs}, nil
}

func buildEdge(obj *Object) (*Edge, error) {
	source, err := requireInt(obj, "edge", "source")
	if err != nil {
		return nil, err
	}
	target, err := requireInt(obj, "edge", "target")
	if err != nil {
		return nil, err
	}
	label, err := takeString(obj, "label")
	if err != nil {
		return nil, err
	}
	return &Edge{Source: source, Target: target, Label: label, attrs: obj.Attrs}, nil
}

// takeInt removes the optional integer field. Returns nil if absent and
// fails if the field is present with a non-integer value.
func takeInt(obj *Object, key string) (*int64, error) {
	attr, ok := obj.Take(key)
	if !ok {
		return nil, nil
	}
	if attr.Value.Kind != ValueInt {
		return nil, mismatch(key, ValueInt, attr)
	}
	n := attr.Value.Int
	return &n, nil
}

// takeString removes the optional string field. Returns nil if absent and
// fails if the field is present with a non-string value.
func takeString(obj *Object, key string) (*string, error) {
	attr, ok := obj.Take(key)
	if !ok {
		return nil, nil
	}
	if attr.Value.Kind != ValueString {
		return nil, mismatch(key, ValueString, attr)
	}
	s := attr.Value.Str
	return &s, nil
}

// requireInt removes a mandatory integer field. Absence is an error, never
// a zero default.
func requireInt(obj *Object, entity, key string) (int64, error) {
	attr, ok := obj.Take(key)
	if !ok {
		return 0, &MissingFieldError{Entity: entity, Field: key}
	}
	if attr.Value.Kind != ValueInt {
		return 0, mismatch(key, ValueInt, attr)
	}
	return attr.Value.Int, nil
}

func mismatch(key string, expected ValueKind, attr Attr) error {
	return &TypeMismatchError{
		Field:    key,
		Expected: expected,
		Actual:   attr.Value,
		Pos:      attr.Pos,
	}
}
