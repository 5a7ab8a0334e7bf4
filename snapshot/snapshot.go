// Package snapshot persists a single repo build (or a merge of several)
// to disk as one msgpack-encoded record, and rehydrates it back into the
// in-memory index and graph types the rest of the engine operates on.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/index"
	"github.com/duyhunghd6/codegraph/model"
)

// record is the on-disk shape, encoded/decoded via msgpack.
type record struct {
	DependencyNodes  []graph.Node            `msgpack:"dependency_nodes"`
	DependencyEdges  []graph.DependencyEdge  `msgpack:"dependency_edges"`
	InheritanceNodes []graph.Node            `msgpack:"inheritance_nodes"`
	InheritanceEdges []graph.InheritanceEdge `msgpack:"inheritance_edges"`
	CallNodes        []graph.Node            `msgpack:"call_nodes"`
	CallEdges        []graph.CallEdge        `msgpack:"call_edges"`

	FileMap   map[string]string            `msgpack:"file_map"`
	ModuleMap map[string]string            `msgpack:"module_map"`
	ExportMap map[string]map[string]string `msgpack:"export_map"`

	ByID   map[string]model.CodeElement   `msgpack:"by_id"`
	ByName map[string][]model.CodeElement `msgpack:"by_name"`

	FileImports map[string][]model.ImportRecord `msgpack:"file_imports"`

	RepoRoot string `msgpack:"repo_root"`
}

// Snapshot is the rehydrated, in-memory form of a persisted record: the
// index and the three graphs, plus the two element indices and the raw
// per-file import lists that a merge or a future re-resolution needs.
type Snapshot struct {
	RepoRoot string
	Index    *index.GlobalIndex
	Graphs   *graph.Graphs

	ByID        map[string]model.CodeElement
	ByName      map[string][]model.CodeElement
	FileImports map[string][]model.ImportRecord
}

// New wraps a freshly built index and graph set into a Snapshot, deriving
// ByID/ByName from entities and carrying fileImports through unchanged.
func New(repoRoot string, idx *index.GlobalIndex, graphs *graph.Graphs, entities []model.CodeElement, fileImports map[string][]model.ImportRecord) *Snapshot {
	byID := make(map[string]model.CodeElement, len(entities))
	byName := make(map[string][]model.CodeElement)
	for _, e := range entities {
		byID[e.ID] = e
		byName[e.Name] = append(byName[e.Name], e)
	}
	return &Snapshot{
		RepoRoot:    repoRoot,
		Index:       idx,
		Graphs:      graphs,
		ByID:        byID,
		ByName:      byName,
		FileImports: fileImports,
	}
}

// Save encodes s and writes it atomically: the record is written to a
// temp file in the same directory as path, then renamed into place, so a
// reader never observes a partially written snapshot.
func Save(path string, s *Snapshot) error {
	rec := toRecord(s)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	enc := msgpack.NewEncoder(tmp)
	if err := enc.Encode(rec); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("snapshot: rename into place: %w", err)
	}
	return nil
}

// Load decodes a snapshot file and rehydrates the index and the three
// graphs from it.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()

	var rec record
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return fromRecord(&rec), nil
}

func toRecord(s *Snapshot) *record {
	return &record{
		DependencyNodes:  nodeValues(s.Graphs.Dependency.Nodes),
		DependencyEdges:  s.Graphs.Dependency.Edges,
		InheritanceNodes: nodeValues(s.Graphs.Inheritance.Nodes),
		InheritanceEdges: s.Graphs.Inheritance.Edges,
		CallNodes:        nodeValues(s.Graphs.Call.Nodes),
		CallEdges:        s.Graphs.Call.Edges,
		FileMap:          s.Index.FileMap(),
		ModuleMap:        s.Index.ModuleMap(),
		ExportMap:        s.Index.ExportMap(),
		ByID:             s.ByID,
		ByName:           s.ByName,
		FileImports:      s.FileImports,
		RepoRoot:         s.RepoRoot,
	}
}

func fromRecord(rec *record) *Snapshot {
	idx := index.Restore(rec.RepoRoot, rec.FileMap, rec.ModuleMap, rec.ExportMap)

	graphs := graph.New()
	for _, n := range rec.DependencyNodes {
		graphs.Dependency.AddNode(n)
	}
	for _, n := range rec.InheritanceNodes {
		graphs.Inheritance.AddNode(n)
	}
	for _, n := range rec.CallNodes {
		graphs.Call.AddNode(n)
	}
	for _, e := range rec.DependencyEdges {
		graphs.Dependency.AddEdge(e)
	}
	for _, e := range rec.InheritanceEdges {
		graphs.Inheritance.AddEdge(e)
	}
	for _, e := range rec.CallEdges {
		graphs.Call.AddEdge(e)
	}

	return &Snapshot{
		RepoRoot:    rec.RepoRoot,
		Index:       idx,
		Graphs:      graphs,
		ByID:        rec.ByID,
		ByName:      rec.ByName,
		FileImports: rec.FileImports,
	}
}

func nodeValues(nodes map[string]graph.Node) []graph.Node {
	out := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}
