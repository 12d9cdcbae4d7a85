package dip

// span is one physical edge of the package: the pin numbers met walking the
// edge from its first drawn position to its last.
type span struct {
	start, end int
}

// low and high bound the pins on the edge regardless of walking direction.
func (s span) low() int  { return min(s.start, s.end) }
func (s span) high() int { return max(s.start, s.end) }

// walk returns a traversal positioned on the first pin of the edge.
func (s span) walk() traversal {
	step := -1
	if s.start < s.end {
		step = 1
	}
	return traversal{current: s.start, stop: s.end, step: step}
}

// traversal steps along an edge one pin at a time.
type traversal struct {
	current, stop, step int
}

func (t *traversal) next() { t.current += t.step }

// resolve maps a viewpoint to the two edges the renderer draws. For north
// and south the edges are the left and right sides, for east and west the
// top and bottom. Viewing the bottom face mirrors the package, which swaps
// the edges.
func resolve(side Side, dir Direction, count int) (first, second span) {
	half := count / 2
	switch dir {
	case North:
		first, second = span{1, half}, span{count, half + 1}
	case South:
		first, second = span{half + 1, count}, span{half, 1}
	case East:
		first, second = span{half, 1}, span{half + 1, count}
	case West:
		first, second = span{count, half + 1}, span{1, half}
	}
	if side == Bottom {
		first, second = second, first
	}
	return first, second
}
