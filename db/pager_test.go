package db

import (
	"encoding/binary"
	"testing"

	"gotest.tools/assert"
)

func TestPagerCorruptLength(t *testing.T) {
	sink := &memSink{buf: make([]byte, pageSize+1)}
	_, err := newPager(sink)
	assert.Error(t, err, "Db file is not a whole number of pages. Corrupt file.")
}

func TestPagerNewPageIsZeroed(t *testing.T) {
	pgr, err := newPager(&memSink{})
	assert.NilError(t, err)
	assert.Equal(t, uint32(0), pgr.numPages)

	page, err := pgr.page(0)
	assert.NilError(t, err)
	assert.Equal(t, pageSize, len(page))
	for _, b := range page {
		if b != 0 {
			t.Fatal("fresh page is not zeroed")
		}
	}
	assert.Equal(t, uint32(1), pgr.numPages)
}

func TestPagerReadsExistingPage(t *testing.T) {
	sink := &memSink{buf: make([]byte, 2*pageSize)}
	binary.LittleEndian.PutUint32(sink.buf[pageSize:], 0xdeadbeef)

	pgr, err := newPager(sink)
	assert.NilError(t, err)
	assert.Equal(t, uint32(2), pgr.numPages)

	page, err := pgr.page(1)
	assert.NilError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(page))

	// same buffer on every subsequent access
	again, err := pgr.page(1)
	assert.NilError(t, err)
	assert.Equal(t, &page[0], &again[0])
}

func TestPagerPageOutOfBounds(t *testing.T) {
	pgr, err := newPager(&memSink{})
	assert.NilError(t, err)
	_, err = pgr.page(tableMaxPages)
	assert.Equal(t, ErrPageOutOfBounds, err)
}

func TestPagerFlushNullPage(t *testing.T) {
	pgr, err := newPager(&memSink{})
	assert.NilError(t, err)
	assert.Equal(t, ErrNilPageFlush, pgr.flush(0))
}

func TestPagerCloseFlushesResidentPages(t *testing.T) {
	sink := &memSink{}
	pgr, err := newPager(sink)
	assert.NilError(t, err)

	page, err := pgr.page(0)
	assert.NilError(t, err)
	binary.LittleEndian.PutUint32(page, 77)

	assert.NilError(t, pgr.close())
	assert.Equal(t, pageSize, len(sink.buf))
	assert.Equal(t, uint32(77), binary.LittleEndian.Uint32(sink.buf))
	assert.Assert(t, pgr.pages[0] == nil)
}
