package internal

import "math"

// Index maps positions to values, looked up with tolerance equality. It's a
// uniform hash grid keyed by quantized coordinates. The grid cell is much
// larger than Tolerance, so anything equal to a query point lives in the
// query's cell or one of its eight neighbors.
type Index[T any] struct {
	cells map[indexKey][]indexEntry[T]
	size  int
}

const indexCellSize = 1e-6

type indexKey struct {
	x, y int64
}

type indexEntry[T any] struct {
	point Point
	value T
}

func NewIndex[T any]() *Index[T] {
	return &Index[T]{cells: make(map[indexKey][]indexEntry[T])}
}

func quantize(p Point) indexKey {
	return indexKey{
		x: int64(math.Floor(p.X / indexCellSize)),
		y: int64(math.Floor(p.Y / indexCellSize)),
	}
}

func (idx *Index[T]) Insert(p Point, value T) {
	key := quantize(p)
	idx.cells[key] = append(idx.cells[key], indexEntry[T]{p, value})
	idx.size++
}

// Find the first value inserted at a position equal to p. Candidates are
// checked in a fixed order, so lookups are deterministic.
func (idx *Index[T]) Find(p Point) (value T, ok bool) {
	key := quantize(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, entry := range idx.cells[indexKey{key.x + dx, key.y + dy}] {
				if entry.point.Equals(p) {
					return entry.value, true
				}
			}
		}
	}
	return value, false
}

// All values at positions equal to p, in lookup order.
func (idx *Index[T]) FindAll(p Point) []T {
	var result []T
	key := quantize(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, entry := range idx.cells[indexKey{key.x + dx, key.y + dy}] {
				if entry.point.Equals(p) {
					result = append(result, entry.value)
				}
			}
		}
	}
	return result
}

func (idx *Index[T]) Len() int {
	return idx.size
}
