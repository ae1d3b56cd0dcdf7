package db

import (
	"fmt"
	"io"
)

// Execute runs a prepared statement against the table, writing any
// row output to w.
func (t *Table) Execute(stmt *Statement, w io.Writer) error {
	switch stmt.typ {
	case statementInsert:
		return t.executeInsert(stmt)
	default:
		return t.executeSelect(w)
	}
}

func (t *Table) executeInsert(stmt *Statement) error {
	root, err := t.rootNode()
	if err != nil {
		return err
	}
	if root.numCells() >= leafNodeMaxCells {
		return ErrTableFull
	}
	cursor, err := t.End()
	if err != nil {
		return err
	}
	return cursor.leafInsert(stmt.rowToInsert.ID, &stmt.rowToInsert)
}

func (t *Table) executeSelect(w io.Writer) error {
	cursor, err := t.Start()
	if err != nil {
		return err
	}
	var row Row
	for !cursor.endOfTable {
		value, err := cursor.value()
		if err != nil {
			return err
		}
		row.deserialize(value)
		fmt.Fprintln(w, row.String())
		if err := cursor.advance(); err != nil {
			return err
		}
	}
	return nil
}
