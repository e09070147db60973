// Package interact routes pointer input to drag rotation, wall ripples,
// follow targets and camera scroll
package interact

import "github.com/lixenwraith/scroll-room/scene"

// Selection is the set of rotatable roots and the owner of every node under them
type Selection struct {
	roots []*scene.Node
	owner map[*scene.Node]*scene.Node
}

func NewSelection() *Selection {
	return &Selection{owner: make(map[*scene.Node]*scene.Node)}
}

// Register adds root and indexes its current subtree; a second call is a no-op
func (s *Selection) Register(root *scene.Node) bool {
	if root == nil || s.Contains(root) {
		return false
	}
	s.roots = append(s.roots, root)
	root.Traverse(func(n *scene.Node) {
		if _, ok := s.owner[n]; !ok {
			s.owner[n] = root
		}
	})
	s.owner[root] = root
	return true
}

func (s *Selection) Contains(root *scene.Node) bool {
	for _, r := range s.roots {
		if r == root {
			return true
		}
	}
	return false
}

// Roots is the hit-test set; callers must not modify it
func (s *Selection) Roots() []*scene.Node { return s.roots }

func (s *Selection) Len() int { return len(s.roots) }

// Owner resolves a hit node to its selectable root
// Nodes attached after registration are resolved through their ancestors
func (s *Selection) Owner(n *scene.Node) *scene.Node {
	for c := n; c != nil; c = c.Parent() {
		if r, ok := s.owner[c]; ok {
			if c != n {
				s.owner[n] = r
			}
			return r
		}
	}
	return nil
}
