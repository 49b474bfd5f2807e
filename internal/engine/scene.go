package engine

// Scene is an ordered collection of renderables. Children are kept in
// insertion order and the same renderable may appear more than once.
type Scene struct {
	children []Renderable
}

func NewScene() *Scene {
	return &Scene{}
}

// Add appends a child.
func (s *Scene) Add(r Renderable) {
	s.children = append(s.children, r)
}

// Children returns a copy of the children in insertion order.
func (s *Scene) Children() []Renderable {
	out := make([]Renderable, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) ChildCount() int {
	return len(s.children)
}

// Contains reports whether r is one of the scene's children.
func (s *Scene) Contains(r Renderable) bool {
	for _, c := range s.children {
		if c == r {
			return true
		}
	}
	return false
}
