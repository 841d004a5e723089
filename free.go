package bspscene

// FreeNodes recursively tears down the tree rooted at root: its nodes,
// their faces, and the portal ring each leaf sits on. Go's collector
// reclaims anything unreachable on its own, but a tree's leaves and
// portals form a cycle (a portal references both the nodes it
// separates, and each node's ring references the portal back), so the
// cycle is broken explicitly rather than left for the collector to
// untangle. Grounded on node_outro.go's shape: a tree-walk that visits
// every node exactly once and severs its outward references.
func FreeNodes(root *Node) {
	if root == nil {
		return
	}
	if root.Leaf {
		WalkPortals(root, func(p *Portal, side int) {
			p.Nodes[side] = nil
			p.Next[side] = nil
			p.Face[side] = nil
		})
		root.Portals = nil
		root.MarkFaces = nil
		return
	}

	FreeNodes(root.Children[0])
	FreeNodes(root.Children[1])
	root.Children[0] = nil
	root.Children[1] = nil
	root.faces = nil
}
