package uploadhttp

import "sync"

// idLocker сериализует дозаписи по каждому id: два конкурентных PATCH одной
// загрузки иначе могли бы испортить оффсеты.
type idLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newIDLocker() *idLocker {
	return &idLocker{locks: map[string]*lockEntry{}}
}

// lock захватывает мьютекс id и возвращает функцию освобождения.
func (l *idLocker) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &lockEntry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
