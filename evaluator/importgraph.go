package evaluator

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ImportGraph records which files include which other files by means of
// use. Files are identified by their resolved paths. A file that uses
// itself is recorded as a node without an edge.
type ImportGraph struct {
	g     *simple.DirectedGraph
	ids   map[string]int64
	names []string
}

func NewImportGraph() *ImportGraph {
	return &ImportGraph{g: simple.NewDirectedGraph(), ids: make(map[string]int64, 8)}
}

func (ig *ImportGraph) node(name string) graph.Node {
	id, ok := ig.ids[name]
	if !ok {
		id = int64(len(ig.names))
		ig.ids[name] = id
		ig.names = append(ig.names, name)
		ig.g.AddNode(simple.Node(id))
	}
	return ig.g.Node(id)
}

// AddFile makes the file known to the graph
func (ig *ImportGraph) AddFile(name string) {
	ig.node(name)
}

// AddImport records that the file from uses the file to
func (ig *ImportGraph) AddImport(from, to string) {
	f := ig.node(from)
	t := ig.node(to)
	if f.ID() != t.ID() {
		ig.g.SetEdge(ig.g.NewEdge(f, t))
	}
}

// Reaches returns true if the file to can be reached from the file from by
// following uses. A file always reaches itself.
func (ig *ImportGraph) Reaches(from, to string) bool {
	f, fok := ig.ids[from]
	t, tok := ig.ids[to]
	if !(fok && tok) {
		return false
	}
	if f == t {
		return true
	}
	return topo.PathExistsIn(ig.g, ig.g.Node(f), ig.g.Node(t))
}

// Imports returns the files used directly by the given file, sorted by name
func (ig *ImportGraph) Imports(from string) []string {
	id, ok := ig.ids[from]
	if !ok {
		return nil
	}
	nodes := graph.NodesOf(ig.g.From(id))
	result := make([]string, len(nodes))
	for i, n := range nodes {
		result[i] = ig.names[n.ID()]
	}
	sort.Strings(result)
	return result
}

// Order returns all files such that each file comes after the files it uses.
// Files that take part in a cycle cannot be ordered, and an error that
// describes the cycles is returned.
func (ig *ImportGraph) Order() ([]string, error) {
	sorted, err := topo.SortStabilized(ig.g, func(nodes []graph.Node) {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	})
	if err != nil {
		return nil, err
	}
	result := make([]string, len(sorted))
	for i, n := range sorted {
		result[len(sorted)-1-i] = ig.names[n.ID()]
	}
	return result, nil
}
