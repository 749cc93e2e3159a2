package maze

import "github.com/ThoseGrapefruits/pacman/internal/core"

const unreachable = -1

// FlowField stores the walking distance from every open cell to a target.
// Distances are computed breadth-first over the four cardinal moves.
type FlowField struct {
	maze   *Maze
	target core.Point
	dist   []int32 // Row-major, unreachable for walls and cut-off cells

	queue []core.Point // Reused across recomputes
}

// NewFlowField creates an empty field for m. Call Compute before use.
func NewFlowField(m *Maze) *FlowField {
	f := &FlowField{
		maze: m,
		dist: make([]int32, len(m.walls)),
	}
	for i := range f.dist {
		f.dist[i] = unreachable
	}
	f.target = core.Pt(-1, -1)
	return f
}

// Target returns the cell the field was last computed for.
func (f *FlowField) Target() core.Point { return f.target }

// Compute recalculates distances toward target. It is a no-op when the
// target has not changed.
func (f *FlowField) Compute(target core.Point) {
	if target == f.target {
		return
	}
	f.target = target

	for i := range f.dist {
		f.dist[i] = unreachable
	}
	if !f.maze.Passable(target) {
		return
	}

	f.queue = append(f.queue[:0], target)
	f.dist[f.maze.index(target)] = 0

	for head := 0; head < len(f.queue); head++ {
		cur := f.queue[head]
		d := f.dist[f.maze.index(cur)]
		for _, dir := range core.Cardinals {
			next := cur.Step(dir)
			if !f.maze.Passable(next) {
				continue
			}
			i := f.maze.index(next)
			if f.dist[i] != unreachable {
				continue
			}
			f.dist[i] = d + 1
			f.queue = append(f.queue, next)
		}
	}
}

// Distance returns the walking distance from p to the target.
// ok is false when p is a wall, outside the maze, or cut off from the target.
func (f *FlowField) Distance(p core.Point) (int, bool) {
	if !f.maze.InBounds(p) {
		return 0, false
	}
	d := f.dist[f.maze.index(p)]
	if d == unreachable {
		return 0, false
	}
	return int(d), true
}
