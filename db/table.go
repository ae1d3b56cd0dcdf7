package db

import "go.uber.org/multierr"

// Table owns the pager and the page number of the tree's root node.
// At this stage the root is always page 0 and always a leaf.
type Table struct {
	pager       *pager
	rootPageNum uint32
	closed      bool
}

// Open opens or creates the database file at path. A brand new file
// gets its root page initialized as an empty leaf.
func Open(path string) (*Table, error) {
	pgr, err := openPager(path)
	if err != nil {
		return nil, err
	}
	return newTable(pgr)
}

func newTable(pgr *pager) (*Table, error) {
	table := &Table{pager: pgr}
	if pgr.numPages == 0 {
		root, err := pgr.page(table.rootPageNum)
		if err != nil {
			return nil, multierr.Append(err, pgr.close())
		}
		leafNode(root).initialize()
	}
	return table, nil
}

// Close flushes every resident page and closes the database file.
// Calling it again after a successful close is a no-op, so an
// explicit close composes with a deferred one.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.pager.close()
}

func (t *Table) rootNode() (leafNode, error) {
	page, err := t.pager.page(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	return leafNode(page), nil
}
