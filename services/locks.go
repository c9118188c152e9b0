package services

import "sync"

// TournamentLocker hands out one mutex per tournament id. Every bracket
// mutation (activation, result report) runs under the tournament's lock so
// two concurrent reports cannot race on the same free slot or double-advance
// a match. Tournaments are independent and proceed in parallel.
type TournamentLocker struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewTournamentLocker() *TournamentLocker {
	return &TournamentLocker{locks: make(map[int]*sync.Mutex)}
}

func (l *TournamentLocker) get(tournamentID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[tournamentID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[tournamentID] = lock
	}
	return lock
}
