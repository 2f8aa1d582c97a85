package lib

import (
	"log/slog"
	"sync"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"
)

// Archiver moves the whole active record set into the archive and keeps a
// single snapshot around for a short undo window. There are only two
// states: idle, and holding a snapshot while the window timer runs. A new
// archive during the window replaces the snapshot and restarts the timer,
// so there is never more than one level of undo.
//
// The expiry timer fires on its own goroutine, so the internal state is
// guarded by a mutex even though every user-driven call arrives on the UI
// event loop. The notify hook runs after expiry and is expected to hand
// control back to the event loop (e.g. via QueueUpdateDraw) before touching
// any UI state.
type Archiver struct {
	store  *Store
	window time.Duration
	notify func()

	mu       sync.Mutex
	snapshot RecordSet
	timer    *time.Timer
	// gen invalidates timers from superseded archive operations: a timer
	// that already fired but has not run yet must not clear a newer
	// snapshot.
	gen int
}

// NewArchiver wires an archiver to a store. A non-positive window selects
// the default of 10 seconds. notify may be nil; when set, it is called once
// after the undo window lapses so the caller can re-render.
func NewArchiver(store *Store, window time.Duration, notify func()) *Archiver {
	if window <= 0 {
		window = c.UndoWindowSeconds * time.Second
	}

	return &Archiver{
		store:  store,
		window: window,
		notify: notify,
	}
}

// Archive snapshots the active set, appends it to the archive (reversed,
// so the archive file stays oldest-first within each batch), clears the
// active set, and opens the undo window. Returns the number of records
// archived; zero means nothing happened, either because the active set was
// empty or because a save failed and everything was left as it was.
func (a *Archiver) Archive() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	active := a.store.LoadActive()
	if len(active) == 0 {
		return 0
	}

	archive := a.store.LoadArchive()

	combined := make(RecordSet, 0, len(archive)+len(active))
	combined = append(combined, archive...)

	for i := len(active) - 1; i >= 0; i-- {
		combined = append(combined, active[i])
	}

	err := a.store.SaveArchive(combined)
	if err != nil {
		slog.Error("archive aborted", "err", err)

		return 0
	}

	err = a.store.SaveActive(RecordSet{})
	if err != nil {
		// every record must live in exactly one of the two slots; put the
		// archive back so nothing exists twice
		rbErr := a.store.SaveArchive(archive)
		if rbErr != nil {
			slog.Error("archive rollback failed", "err", rbErr)
		}

		slog.Error("archive aborted", "err", err)

		return 0
	}

	a.snapshot = active
	a.startTimerLocked()

	return len(active)
}

// Undo restores the active set to the snapshot taken by the last Archive
// and trims the same number of records from the archive's tail. The trim
// is by count, not identity, which is safe because nothing else writes to
// the archive during the window. Returns the number of records restored;
// zero means the window had already lapsed (or was never opened) and
// nothing changed.
func (a *Archiver) Undo() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.snapshot == nil {
		return 0
	}

	archive := a.store.LoadArchive()

	n := len(a.snapshot)
	if n > len(archive) {
		n = len(archive)
	}

	trimmed := archive[:len(archive)-n]

	err := a.store.SaveArchive(trimmed)
	if err != nil {
		slog.Error("undo aborted", "err", err)

		return 0
	}

	err = a.store.SaveActive(a.snapshot)
	if err != nil {
		rbErr := a.store.SaveArchive(archive)
		if rbErr != nil {
			slog.Error("undo rollback failed", "err", rbErr)
		}

		slog.Error("undo aborted", "err", err)

		return 0
	}

	restored := len(a.snapshot)

	a.snapshot = nil
	a.gen++
	a.stopTimerLocked()

	return restored
}

// UndoWindowOpen reports whether an archive can currently be taken back.
func (a *Archiver) UndoWindowOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshot != nil
}

// expire discards the snapshot when the window timer fires. The gen check
// makes a timer from a superseded archive a no-op. Returns true when the
// snapshot was actually discarded, so the timer callback knows whether to
// notify.
func (a *Archiver) expire(gen int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen || a.snapshot == nil {
		return false
	}

	a.snapshot = nil
	a.timer = nil

	return true
}

func (a *Archiver) startTimerLocked() {
	a.gen++
	gen := a.gen

	if a.timer != nil {
		a.timer.Stop()
	}

	a.timer = time.AfterFunc(a.window, func() {
		if a.expire(gen) && a.notify != nil {
			a.notify()
		}
	})
}

func (a *Archiver) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
