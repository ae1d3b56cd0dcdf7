package db

// Cursor is a position in the tree: a page number, a cell index
// within that page, and a flag set once the position is one past the
// last row. It borrows the table for the duration of one statement.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// Start positions a cursor on the first row of the table.
func (t *Table) Start() (*Cursor, error) {
	root, err := t.rootNode()
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		endOfTable: root.numCells() == 0,
	}, nil
}

// End positions a cursor one past the last row.
func (t *Table) End() (*Cursor, error) {
	root, err := t.rootNode()
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		cellNum:    root.numCells(),
		endOfTable: true,
	}, nil
}

func (c *Cursor) node() (leafNode, error) {
	page, err := c.table.pager.page(c.pageNum)
	if err != nil {
		return nil, err
	}
	return leafNode(page), nil
}

// value returns the value slice of the current cell. Only meaningful
// while the cursor has not reached the end of the table.
func (c *Cursor) value() ([]byte, error) {
	node, err := c.node()
	if err != nil {
		return nil, err
	}
	return node.value(c.cellNum), nil
}

func (c *Cursor) advance() error {
	node, err := c.node()
	if err != nil {
		return err
	}
	c.cellNum++
	if c.cellNum >= node.numCells() {
		c.endOfTable = true
	}
	return nil
}

// leafInsert writes key and row at the cursor position, shifting any
// later cells one slot right to make room. Inserting into a full
// leaf fails; splitting is not implemented.
func (c *Cursor) leafInsert(key uint32, row *Row) error {
	node, err := c.node()
	if err != nil {
		return err
	}
	numCells := node.numCells()
	if numCells >= leafNodeMaxCells {
		return ErrLeafFull
	}
	for i := numCells; i > c.cellNum; i-- {
		copy(node.cell(i), node.cell(i-1))
	}
	node.setNumCells(numCells + 1)
	node.setKey(c.cellNum, key)
	row.serialize(node.value(c.cellNum))
	return nil
}
