// Package notify delivers in-process table-change events so derived
// views can re-evaluate after any write touching their underlying
// tables. Unsubscribing is the returned cancel func.
package notify

import "sync"

// Table identifies a mutated record set.
type Table string

const (
	TableWorkers     Table = "workers"
	TableSites       Table = "sites"
	TableAssignments Table = "worker_site_assignments"
	TablePayments    Table = "payments"
	TableAdvances    Table = "advances"
	TableAttendance  Table = "attendance"
)

type subscriber struct {
	tables map[Table]bool // empty means all tables
	ch     chan Table
}

// Notifier fans table-change events out to subscribers.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]*subscriber)}
}

// Subscribe registers interest in the given tables (all tables when none
// are named). The returned cancel func unsubscribes and closes the
// channel. Events are dropped for subscribers that fall behind rather
// than blocking writers.
func (n *Notifier) Subscribe(tables ...Table) (<-chan Table, func()) {
	sub := &subscriber{
		tables: make(map[Table]bool, len(tables)),
		ch:     make(chan Table, 16),
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = sub
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if s, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(s.ch)
		}
		n.mu.Unlock()
	}
	return sub.ch, cancel
}

// Notify publishes a change on the given table to matching subscribers.
func (n *Notifier) Notify(table Table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		if len(sub.tables) > 0 && !sub.tables[table] {
			continue
		}
		select {
		case sub.ch <- table:
		default:
		}
	}
}
