package gmlparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return src
}

func TestBuildGraphEmpty(t *testing.T) {
	g, err := ParseGraph(readFixture(t, "empty.gml"))
	require.NoError(t, err)
	assert.Nil(t, g.ID)
	assert.Nil(t, g.Directed)
	assert.Nil(t, g.Label)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
	assert.Empty(t, g.Attributes())
}

func TestBuildGraphSingle(t *testing.T) {
	// The unrecognized "k" field survives as a residual graph attribute.
	g, err := ParseGraph(readFixture(t, "single.gml"))
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)

	k, ok := g.GetAttribute("k")
	require.True(t, ok)
	assert.Equal(t, ValueString, k.Value.Kind)
	assert.Equal(t, "test", k.Value.Str)
}

func TestBuildGraphSimple(t *testing.T) {
	g, err := ParseGraph(readFixture(t, "simple.gml"))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, int64(1), g.Edges[0].Source)
	assert.Equal(t, int64(2), g.Edges[0].Target)
	assert.Nil(t, g.Edges[0].Label)
}

func TestBuildGraphWikipedia(t *testing.T) {
	g, err := ParseGraph(readFixture(t, "wikipedia.gml"))
	require.NoError(t, err)

	require.NotNil(t, g.ID)
	assert.Equal(t, int64(42), *g.ID)
	require.NotNil(t, g.Directed)
	assert.True(t, *g.Directed)
	require.NotNil(t, g.Label)
	assert.Equal(t, "Hello, I am a graph", *g.Label)
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 3)

	// The "comment" field is not consumed and stays residual.
	comment, ok := g.GetAttribute("comment")
	require.True(t, ok)
	assert.Equal(t, "This is a sample graph", comment.Value.Str)

	// Node-level residual attribute.
	n1 := g.NodeByID(1)
	require.NotNil(t, n1)
	sample, ok := n1.GetAttribute("thisIsASampleAttribute")
	require.True(t, ok)
	assert.Equal(t, int64(42), sample.Value.Int)
}

func TestBuildGraphSynoptic(t *testing.T) {
	g, err := ParseGraph(readFixture(t, "synoptic.gml"))
	require.NoError(t, err)

	require.Len(t, g.Nodes, 7)
	assert.Equal(t, int64(0), g.Nodes[0].ID)
	require.NotNil(t, g.Nodes[0].Label)
	assert.Equal(t, "a", *g.Nodes[0].Label)
	assert.Equal(t, int64(6), g.Nodes[6].ID)
	require.NotNil(t, g.Nodes[6].Label)
	assert.Equal(t, "INITIAL", *g.Nodes[6].Label)

	// Swap removal pulls the file's last edge out first: taking the
	// "directed" field moved it to the front of the pair list.
	require.Len(t, g.Edges, 8)
	assert.Equal(t, int64(6), g.Edges[0].Source)
	assert.Equal(t, int64(0), g.Edges[0].Target)
	require.NotNil(t, g.Edges[0].Label)
	assert.Equal(t, "P: 1.00", *g.Edges[0].Label)

	// Directed accessor helpers.
	out := g.EdgesFrom(3)
	assert.Len(t, out, 2)
	in := g.EdgesTo(5)
	assert.Len(t, in, 2)
}

func TestBuildGraphMissingGraph(t *testing.T) {
	root, err := Parse([]byte(`notagraph [ id 1 ]`))
	require.NoError(t, err)
	_, err = BuildGraph(root)
	require.Error(t, err)
	assert.IsType(t, &MissingGraphError{}, err)
}

func TestBuildGraphWrongRootKind(t *testing.T) {
	root, err := Parse([]byte(`graph 42`))
	require.NoError(t, err)
	_, err = BuildGraph(root)
	require.Error(t, err)

	mismatch, ok := err.(*TypeMismatchError)
	require.True(t, ok)
	assert.Equal(t, "graph", mismatch.Field)
	assert.Equal(t, ValueObject, mismatch.Expected)
	assert.Equal(t, ValueInt, mismatch.Actual.Kind)
}

func TestBuildGraphDirectedZeroIsFalse(t *testing.T) {
	g, err := ParseGraph([]byte(`graph [ directed 0 ]`))
	require.NoError(t, err)
	require.NotNil(t, g.Directed)
	assert.False(t, *g.Directed)

	// Any integer other than 1 means undirected.
	g, err = ParseGraph([]byte(`graph [ directed 2 ]`))
	require.NoError(t, err)
	require.NotNil(t, g.Directed)
	assert.False(t, *g.Directed)
}

func TestBuildGraphTypeMismatches(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{"graph id string", `graph [ id "nope" ]`, "id"},
		{"graph directed string", `graph [ directed "yes" ]`, "directed"},
		{"graph label int", `graph [ label 7 ]`, "label"},
		{"node not object", `graph [ node 1 ]`, "node"},
		{"edge not object", `graph [ edge "e" ]`, "edge"},
		{"node id string", `graph [ node [ id "x" ] ]`, "id"},
		{"node label int", `graph [ node [ id 1 label 2 ] ]`, "label"},
		{"edge source string", `graph [ edge [ source "a" target 1 ] ]`, "source"},
		{"edge target object", `graph [ edge [ source 1 target [ ] ] ]`, "target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGraph([]byte(tt.src))
			require.Error(t, err)
			mismatch, ok := err.(*TypeMismatchError)
			require.True(t, ok, "error: %v", err)
			assert.Equal(t, tt.field, mismatch.Field)
		})
	}
}

func TestBuildGraphMissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		entity string
		field  string
	}{
		{"node without id", `graph [ node [ label "n" ] ]`, "node", "id"},
		{"edge without source", `graph [ edge [ target 1 ] ]`, "edge", "source"},
		{"edge without target", `graph [ edge [ source 1 ] ]`, "edge", "target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGraph([]byte(tt.src))
			require.Error(t, err)
			missing, ok := err.(*MissingFieldError)
			require.True(t, ok, "error: %v", err)
			assert.Equal(t, tt.entity, missing.Entity)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestBuildGraphFirstErrorWins(t *testing.T) {
	// Nodes are extracted before edges, so the bad node is reported even
	// though the bad edge appears first in the source.
	src := `graph [
	edge [ source 1 ]
	node [ label "no id" ]
]`
	_, err := ParseGraph([]byte(src))
	require.Error(t, err)
	missing, ok := err.(*MissingFieldError)
	require.True(t, ok)
	assert.Equal(t, "node", missing.Entity)
	assert.Equal(t, "id", missing.Field)
}

func TestResidualAttributeProtocol(t *testing.T) {
	src := `graph [
	node [
		id 1
		weight 10
		color "red"
	]
]`
	g, err := ParseGraph([]byte(src))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	n := g.Nodes[0]

	// Get does not consume.
	w, ok := n.GetAttribute("weight")
	require.True(t, ok)
	assert.Equal(t, int64(10), w.Value.Int)
	w2, ok := n.GetAttribute("weight")
	require.True(t, ok)
	assert.Equal(t, w, w2)

	// Take consumes exactly the matched entry.
	taken, ok := n.TakeAttribute("weight")
	require.True(t, ok)
	assert.Equal(t, int64(10), taken.Value.Int)
	_, ok = n.GetAttribute("weight")
	assert.False(t, ok)

	// Other residual entries are untouched.
	color, ok := n.GetAttribute("color")
	require.True(t, ok)
	assert.Equal(t, "red", color.Value.Str)

	_, ok = n.TakeAttribute("absent")
	assert.False(t, ok)
}

func TestTakeDuplicateKeys(t *testing.T) {
	root, err := Parse([]byte(`k 1 k 2 k 3`))
	require.NoError(t, err)

	var got []int64
	for {
		attr, ok := root.Take("k")
		if !ok {
			break
		}
		got = append(got, attr.Value.Int)
	}
	// All entries come out; order across arbitrary interleavings is not
	// guaranteed by swap removal.
	assert.ElementsMatch(t, []int64{1, 2, 3}, got)
	assert.Empty(t, root.Attrs)
}

func TestBuildGraphConsumesRoot(t *testing.T) {
	root, err := Parse(readFixture(t, "wikipedia.gml"))
	require.NoError(t, err)
	_, err = BuildGraph(root)
	require.NoError(t, err)

	// The graph entry was taken from the root tree.
	_, ok := root.Get("graph")
	assert.False(t, ok)
}
