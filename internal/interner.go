package internal

// Interner hands out dense vertex indices in first seen order. Points are
// matched by bit pattern, so the two copies of a bridge end share an index.
type Interner struct {
	index    map[PointKey]int
	Vertices []Point
}

func NewInterner() *Interner {
	return &Interner{index: make(map[PointKey]int)}
}

func (in *Interner) Intern(p Point) int {
	key := p.Key()
	if i, ok := in.index[key]; ok {
		return i
	}
	i := len(in.Vertices)
	in.index[key] = i
	in.Vertices = append(in.Vertices, p)
	return i
}

func (in *Interner) Len() int {
	return len(in.Vertices)
}
