package db

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const defaultPrompt = "db > "

// REPL reads statements line by line and executes them against one
// table. All output goes to out, so whole transcripts are testable.
type REPL struct {
	table  *Table
	in     *bufio.Scanner
	out    io.Writer
	Prompt string
}

func NewREPL(table *Table, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		table:  table,
		in:     bufio.NewScanner(in),
		out:    out,
		Prompt: defaultPrompt,
	}
}

// Run loops until .exit or a fatal error. User errors print a fixed
// message and keep the loop alive; anything else unwinds to the
// caller, whose deferred table close still flushes resident pages.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.out, r.Prompt)
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return errors.Wrap(err, "Error reading input")
			}
			return ErrReadInput
		}
		line := r.in.Text()
		if strings.HasPrefix(line, ".") {
			exit, err := r.metaCommand(line)
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
			continue
		}
		stmt, err := prepareStatement(line)
		if err != nil {
			r.reportPrepareError(line, err)
			continue
		}
		if err := r.table.Execute(stmt, r.out); err != nil {
			if err == ErrTableFull {
				fmt.Fprintln(r.out, "Error: Table full.")
				continue
			}
			return err
		}
		fmt.Fprintln(r.out, "Executed.")
	}
}

func (r *REPL) metaCommand(line string) (exit bool, err error) {
	switch line {
	case ".exit":
		if err := r.table.Close(); err != nil {
			return true, err
		}
		fmt.Fprintln(r.out, "Bye!")
		return true, nil
	case ".btree":
		root, err := r.table.rootNode()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, "Tree:")
		root.print(r.out)
	case ".constants":
		r.printConstants()
	default:
		fmt.Fprintf(r.out, "Unrecognized command %s\n", line)
	}
	return false, nil
}

func (r *REPL) reportPrepareError(line string, err error) {
	switch err {
	case errPrepareNegativeID:
		fmt.Fprintln(r.out, "ID must be positive.")
	case errPrepareStringTooLong:
		fmt.Fprintln(r.out, "String is too long.")
	case errPrepareSyntax:
		fmt.Fprintln(r.out, "Syntax error. Could not parse statement.")
	default:
		fmt.Fprintf(r.out, "Unrecognized keyword at start of '%s'.\n", line)
	}
}

func (r *REPL) printConstants() {
	fmt.Fprintln(r.out, "Constants:")
	fmt.Fprintf(r.out, "ROW_SIZE: %d\n", rowSize)
	fmt.Fprintf(r.out, "COMMON_NODE_HEADER_SIZE: %d\n", commonNodeHeaderSize)
	fmt.Fprintf(r.out, "LEAF_NODE_HEADER_SIZE: %d\n", leafNodeHeaderSize)
	fmt.Fprintf(r.out, "LEAF_NODE_CELL_SIZE: %d\n", leafNodeCellSize)
	fmt.Fprintf(r.out, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", leafNodeSpaceForCells)
	fmt.Fprintf(r.out, "LEAF_NODE_MAX_CELLS: %d\n", leafNodeMaxCells)
}
