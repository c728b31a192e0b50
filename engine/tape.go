package engine

// tape is a fixed-length circular array of bounded cells with one cursor.
type tape struct {
	cells    []int64
	ptr      int
	minValue int64
	maxValue int64
}

func newTape(cfg config) tape {
	return tape{
		cells:    make([]int64, cfg.tapeSize),
		minValue: cfg.minValue,
		maxValue: cfg.maxValue,
	}
}

func (t *tape) reset() {
	clear(t.cells)
	t.ptr = 0
}

func (t *tape) right() {
	t.ptr = (t.ptr + 1) % len(t.cells)
}

func (t *tape) left() {
	t.ptr = (t.ptr - 1 + len(t.cells)) % len(t.cells)
}

func (t *tape) get() int64 {
	return t.cells[t.ptr]
}

func (t *tape) set(v int64) {
	t.cells[t.ptr] = v
}

// add applies delta (+1 or -1) to the current cell. The cell is left
// unchanged and a non-running status returned when the result would leave
// [minValue, maxValue]. Comparing against the bound before adding keeps the
// check exact at the edges of int64.
func (t *tape) add(delta int64) Status {
	v := t.cells[t.ptr]
	if delta > 0 && v >= t.maxValue {
		return StatusOverflowError
	}
	if delta < 0 && v <= t.minValue {
		return StatusUnderflowError
	}
	t.cells[t.ptr] = v + delta
	return StatusRunning
}

// window returns a copy of cells in [start, end).
func (t *tape) window(start, end int) []int64 {
	out := make([]int64, end-start)
	copy(out, t.cells[start:end])
	return out
}
