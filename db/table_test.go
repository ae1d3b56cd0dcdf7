package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func TestOpenInitializesRootLeaf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	table, err := Open(path)
	assert.NilError(t, err)

	root, err := table.rootNode()
	assert.NilError(t, err)
	assert.Equal(t, nodeLeaf, root.typ())
	assert.Equal(t, uint32(0), root.numCells())
	assert.NilError(t, table.Close())

	info, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Equal(t, int64(pageSize), info.Size())
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	table, err := Open(path)
	assert.NilError(t, err)
	assert.NilError(t, table.Close())
	assert.NilError(t, table.Close())
}

func TestTablePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	table, err := Open(path)
	assert.NilError(t, err)
	for _, line := range []string{
		"insert 1 alice alice@example.com",
		"insert 2 bob bob@example.com",
	} {
		stmt, err := prepareStatement(line)
		assert.NilError(t, err)
		assert.NilError(t, table.Execute(stmt, &bytes.Buffer{}))
	}
	var before bytes.Buffer
	assert.NilError(t, table.executeSelect(&before))
	assert.NilError(t, table.Close())

	info, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Equal(t, int64(0), info.Size()%pageSize)

	reopened, err := Open(path)
	assert.NilError(t, err)
	var after bytes.Buffer
	assert.NilError(t, reopened.executeSelect(&after))
	assert.Equal(t, before.String(), after.String())
	assert.Equal(t, "(1, alice, alice@example.com)\n(2, bob, bob@example.com)\n", after.String())
	assert.NilError(t, reopened.Close())
}

func TestExecuteInsertTableFull(t *testing.T) {
	table := newTestTable(t)
	for id := uint32(1); id <= leafNodeMaxCells; id++ {
		insertRow(t, table, id)
	}
	stmt, err := prepareStatement("insert 14 user14 person14@example.com")
	assert.NilError(t, err)
	assert.Equal(t, ErrTableFull, table.Execute(stmt, &bytes.Buffer{}))
}
