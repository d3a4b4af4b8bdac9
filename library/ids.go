package library

// idAllocator hands out sequential IDs starting at 1. Stores call next only
// once an insert is confirmed, so merged or rejected candidates leave no gaps.
type idAllocator struct {
	last int
}

func (a *idAllocator) next() int {
	a.last++
	return a.last
}
