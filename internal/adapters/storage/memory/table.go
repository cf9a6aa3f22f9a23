package memory

import (
	"sort"
	"sync"
)

// table es el almacenamiento común de los repos in-memory: ids enteros
// secuenciales asignados en insert, como haría una columna identity.
type table[T any] struct {
	mu       sync.RWMutex
	seq      int
	rows     map[int]T
	idOf     func(T) int
	setID    func(*T, int)
	notFound error
}

func newTable[T any](idOf func(T) int, setID func(*T, int), notFound error) *table[T] {
	return &table[T]{
		rows:     make(map[int]T),
		idOf:     idOf,
		setID:    setID,
		notFound: notFound,
	}
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.setID(&v, t.seq)
	t.rows[t.seq] = v
	return v
}

func (t *table[T]) replace(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(v)
	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	t.rows[id] = v
	return nil
}

func (t *table[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, t.notFound
	}
	return v, nil
}

// list devuelve las filas que pasan el filtro (nil = todas), ordenadas por id.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.idOf(out[i]) < t.idOf(out[j]) })
	return out
}

func (t *table[T]) delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	delete(t.rows, id)
	return nil
}

// find devuelve la primera fila (por id) que cumple match.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	rows := t.list(match)
	if len(rows) == 0 {
		var zero T
		return zero, false
	}
	return rows[0], true
}
