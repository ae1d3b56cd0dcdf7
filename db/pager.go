package db

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	pageSize      = 4096
	tableMaxPages = 100
)

// pager translates page numbers into in-memory buffers, loading from
// and flushing to the backing sink on demand. There is no eviction;
// at most tableMaxPages pages are ever resident.
type pager struct {
	sink       Sink
	fileLength int64
	numPages   uint32
	pages      [tableMaxPages][]byte
}

func openPager(path string) (*pager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "db: open %s", path)
	}
	pgr, err := newPager(fileSink{file})
	if err != nil {
		err = multierr.Append(err, file.Close())
		return nil, err
	}
	return pgr, nil
}

func newPager(sink Sink) (*pager, error) {
	size, err := sink.Size()
	if err != nil {
		return nil, errors.Wrap(err, "db: size")
	}
	if size%pageSize != 0 {
		return nil, ErrCorruptFile
	}
	return &pager{
		sink:       sink,
		fileLength: size,
		numPages:   uint32(size / pageSize),
	}, nil
}

// page returns the buffer for page num, reading it from the sink on
// first access. A short read leaves the tail zeroed. Touching a page
// past the end of the file extends numPages so close writes it out.
func (p *pager) page(num uint32) ([]byte, error) {
	if num >= tableMaxPages {
		return nil, ErrPageOutOfBounds
	}
	if p.pages[num] == nil {
		buf := make([]byte, pageSize)
		pagesOnDisk := uint32(p.fileLength / pageSize)
		if num < pagesOnDisk {
			if _, err := p.sink.ReadAt(buf, int64(num)*pageSize); err != nil && err != io.EOF {
				return nil, errors.Wrapf(err, "db: read page %d", num)
			}
		}
		if num >= p.numPages {
			p.numPages = num + 1
		}
		p.pages[num] = buf
	}
	return p.pages[num], nil
}

func (p *pager) flush(num uint32) error {
	if p.pages[num] == nil {
		return ErrNilPageFlush
	}
	if _, err := p.sink.WriteAt(p.pages[num], int64(num)*pageSize); err != nil {
		return errors.Wrapf(err, "db: write page %d", num)
	}
	return nil
}

// close flushes every resident page, closes the sink, and releases
// all buffers.
func (p *pager) close() error {
	var err error
	for num := uint32(0); num < p.numPages; num++ {
		if p.pages[num] == nil {
			continue
		}
		err = multierr.Append(err, p.flush(num))
	}
	err = multierr.Append(err, p.sink.Close())
	for num := range p.pages {
		p.pages[num] = nil
	}
	return err
}
