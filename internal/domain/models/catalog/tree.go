package catalog

import "time"

// TreeNode is a materialized folder. Children are held as folder IDs and
// resolved against the owning Forest, so no node is reachable through more
// than one parent slice.
type TreeNode struct {
	ID        string
	Name      string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
	ChildIDs  []string
	Files     []File // carried from the source record as-is (nil = no file data)
}

// Forest is the result of materializing a flat folder sequence.
type Forest struct {
	// RootIDs lists root folders in input order.
	RootIDs []string

	// Nodes indexes every materialized node by folder ID.
	Nodes map[string]*TreeNode

	// Orphans lists folders whose parent is absent from the input set.
	Orphans []string

	// SelfParented lists folders whose parent ID equals their own ID.
	SelfParented []string
}

// Roots returns the root nodes in order.
func (f *Forest) Roots() []*TreeNode {
	return f.resolve(f.RootIDs)
}

// Children returns the direct children of a node in order.
func (f *Forest) Children(node *TreeNode) []*TreeNode {
	return f.resolve(node.ChildIDs)
}

func (f *Forest) resolve(ids []string) []*TreeNode {
	nodes := make([]*TreeNode, 0, len(ids))
	for _, id := range ids {
		if node, ok := f.Nodes[id]; ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// HasAnomalies reports whether any input record was excluded from the tree.
func (f *Forest) HasAnomalies() bool {
	return len(f.Orphans) > 0 || len(f.SelfParented) > 0
}
