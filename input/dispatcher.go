// ABOUTME: Resolves key presses against the active binding table
// ABOUTME: Tables are replaced wholesale with an atomic pointer swap

package input

import "sync/atomic"

// Dispatcher resolves key identifiers to actions.
// Resolve and Reload are safe to call from different goroutines.
type Dispatcher struct {
	table atomic.Pointer[Table]
}

// NewDispatcher returns a dispatcher serving the given table
func NewDispatcher(t *Table) *Dispatcher {
	d := &Dispatcher{}
	d.table.Store(t)
	return d
}

// Resolve looks a key up in the table active at the time of the call.
// Unbound keys return false and do nothing.
func (d *Dispatcher) Resolve(id string) (Action, bool) {
	t := d.table.Load()
	if t == nil {
		return 0, false
	}

	return t.Lookup(id)
}

// Reload replaces the active table
func (d *Dispatcher) Reload(t *Table) {
	d.table.Store(t)
}

// Table returns the active table
func (d *Dispatcher) Table() *Table {
	return d.table.Load()
}
