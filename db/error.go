package db

import "github.com/pkg/errors"

var (
	// ErrCorruptFile is the verbatim startup message for a database
	// file whose length is not a whole number of pages.
	ErrCorruptFile = errors.New("Db file is not a whole number of pages. Corrupt file.")

	// ErrReadInput is the verbatim message for EOF or a read error on
	// the interactive input.
	ErrReadInput = errors.New("Error reading input")

	ErrTableFull       = errors.New("db: table full")
	ErrPageOutOfBounds = errors.New("db: page number out of bounds")
	ErrNilPageFlush    = errors.New("db: tried to flush null page")
	ErrLeafFull        = errors.New("db: need to implement splitting a leaf node")
)
