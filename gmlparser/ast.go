package gmlparser

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueInt    ValueKind = "int"
	ValueObject ValueKind = "object"
)

// Value is a parsed attribute value. Kind determines which typed field is
// populated. There are exactly three variants: GML has no floats, booleans,
// or lists; boolean-like fields are integers by convention.
type Value struct {
	Kind ValueKind
	Str  string  // populated when Kind == ValueString
	Int  int64   // populated when Kind == ValueInt
	Obj  *Object // populated when Kind == ValueObject
	Raw  string  // original text representation, set for scalar kinds
}

// String returns the text representation of the value.
func (v Value) String() string {
	if v.Kind == ValueObject {
		return "[...]"
	}
	return v.Raw
}

// Attr is a single key/value entry from an object body.
type Attr struct {
	Key   string
	Value Value
	Pos   Position
}

// Object is an ordered sequence of key/value entries. Keys are not unique;
// repeated keys are legal and meaningful (a graph holds many "node" and
// "edge" entries). Entry order is source order.
type Object struct {
	Attrs []Attr
}

// Get returns the first entry with the given key, without removing it.
func (o *Object) Get(key string) (Attr, bool) {
	return getAttr(o.Attrs, key)
}

// Take removes and returns the first entry with the given key. Removal swaps
// the matched entry with the last one, so repeated calls are O(1) apart from
// the scan; the relative order of the remaining entries is not preserved.
func (o *Object) Take(key string) (Attr, bool) {
	return takeAttr(&o.Attrs, key)
}

func getAttr(attrs []Attr, key string) (Attr, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr, true
		}
	}
	return Attr{}, false
}

func takeAttr(attrs *[]Attr, key string) (Attr, bool) {
	for i, attr := range *attrs {
		if attr.Key == key {
			last := len(*attrs) - 1
			(*attrs)[i] = (*attrs)[last]
			*attrs = (*attrs)[:last]
			return attr, true
		}
	}
	return Attr{}, false
}

// Graph is the typed representation of a GML graph. Optional fields are nil
// when absent from the source. Attributes the extractor did not consume stay
// attached as residual attributes, reachable through GetAttribute and
// TakeAttribute.
type Graph struct {
	ID       *int64
	Directed *bool
	Label    *string
	Nodes    []*Node
	Edges    []*Edge
	attrs    []Attr
}

// Node represents a single node entry. ID is always present; extraction
// fails rather than defaulting it.
type Node struct {
	ID    int64
	Label *string
	attrs []Attr
}

// Edge represents a single edge entry between two node IDs.
type Edge struct {
	Source int64
	Target int64
	Label  *string
	attrs  []Attr
}

// Attributes returns the residual attributes left after extraction.
func (g *Graph) Attributes() []Attr { return g.attrs }

// GetAttribute returns the first residual attribute with the given key.
func (g *Graph) GetAttribute(key string) (Attr, bool) { return getAttr(g.attrs, key) }

// TakeAttribute removes and returns the first residual attribute with the
// given key.
func (g *Graph) TakeAttribute(key string) (Attr, bool) { return takeAttr(&g.attrs, key) }

// Attributes returns the residual attributes left after extraction.
func (n *Node) Attributes() []Attr { return n.attrs }

// GetAttribute returns the first residual attribute with the given key.
func (n *Node) GetAttribute(key string) (Attr, bool) { return getAttr(n.attrs, key) }

// TakeAttribute removes and returns the first residual attribute with the
// given key.
func (n *Node) TakeAttribute(key string) (Attr, bool) { return takeAttr(&n.attrs, key) }

// Attributes returns the residual attributes left after extraction.
func (e *Edge) Attributes() []Attr { return e.attrs }

// GetAttribute returns the first residual attribute with the given key.
func (e *Edge) GetAttribute(key string) (Attr, bool) { return getAttr(e.attrs, key) }

// TakeAttribute removes and returns the first residual attribute with the
// given key.
func (e *Edge) TakeAttribute(key string) (Attr, bool) { return takeAttr(&e.attrs, key) }

// NodeByID returns the node with the given ID, or nil if not found.
func (g *Graph) NodeByID(id int64) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// EdgesFrom returns all edges originating from the given node ID.
func (g *Graph) EdgesFrom(id int64) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.Source == id {
			result = append(result, e)
		}
	}
	return result
}

// EdgesTo returns all edges targeting the given node ID.
func (g *Graph) EdgesTo(id int64) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.Target == id {
			result = append(result, e)
		}
	}
	return result
}
