package room

import (
	"sync"

	"fivecarddraw-server/pkg/session"

	"github.com/sirupsen/logrus"
)

// Caretaker keeps track of the live tables
type Caretaker struct {
	logger logrus.FieldLogger

	lock   sync.RWMutex
	tables map[string]*Table
}

// NewCaretaker returns a new caretaker
func NewCaretaker(logger logrus.FieldLogger) *Caretaker {
	return &Caretaker{
		logger: logger,
		tables: make(map[string]*Table),
	}
}

// CreateTable creates and registers a new table
func (c *Caretaker) CreateTable(opts TableOptions) (*Table, error) {
	table, err := NewTable(c.logger, opts)
	if err != nil {
		return nil, err
	}

	c.add(table)
	return table, nil
}

// RestoreTable creates and registers a table from a saved session
func (c *Caretaker) RestoreTable(sess *session.Session) (*Table, error) {
	table, err := NewTableFromSession(c.logger, sess)
	if err != nil {
		return nil, err
	}

	c.add(table)
	return table, nil
}

func (c *Caretaker) add(table *Table) {
	c.lock.Lock()
	c.tables[table.UUID] = table
	c.lock.Unlock()

	c.logger.WithField("table", table.UUID).Info("table created")
}

// Get returns the table with the given UUID
func (c *Caretaker) Get(uuid string) (*Table, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	table, ok := c.tables[uuid]
	return table, ok
}

// Remove closes the table and drops it from the registry
func (c *Caretaker) Remove(uuid string) {
	c.lock.Lock()
	table, ok := c.tables[uuid]
	delete(c.tables, uuid)
	c.lock.Unlock()

	if ok {
		table.EndShift()
		c.logger.WithField("table", uuid).Info("table removed")
	}
}
