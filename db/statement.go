package db

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

type statementType int

const (
	statementInsert statementType = iota
	statementSelect
)

// Statement is a prepared statement ready for execution.
type Statement struct {
	typ         statementType
	rowToInsert Row
}

var (
	errPrepareSyntax        = errors.New("db: syntax error")
	errPrepareNegativeID    = errors.New("db: id must be positive")
	errPrepareStringTooLong = errors.New("db: string is too long")
	errPrepareUnrecognized  = errors.New("db: unrecognized statement")
)

// prepareStatement tokenizes one input line into a Statement. The
// language has exactly two statements, matched by keyword prefix.
func prepareStatement(line string) (*Statement, error) {
	switch {
	case strings.HasPrefix(line, "insert"):
		return prepareInsert(line)
	case strings.HasPrefix(line, "select"):
		return &Statement{typ: statementSelect}, nil
	default:
		return nil, errPrepareUnrecognized
	}
}

func prepareInsert(line string) (*Statement, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
	if len(tokens) < 4 {
		return nil, errPrepareSyntax
	}
	id := parseLong(tokens[1])
	if id < 0 {
		return nil, errPrepareNegativeID
	}
	username, email := tokens[2], tokens[3]
	if len(username) > columnUsernameSize || len(email) > columnEmailSize {
		return nil, errPrepareStringTooLong
	}
	return &Statement{
		typ:         statementInsert,
		rowToInsert: newRow(uint32(id), username, email),
	}, nil
}

// parseLong follows strtol: leading whitespace is skipped, then an
// optional sign followed by the longest digit prefix; no digits parses
// as 0, and out-of-range values clamp to the int64 limits.
func parseLong(s string) int64 {
	var i int
	for i < len(s) && strings.IndexByte(" \t\n\v\f\r", s[i]) >= 0 {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	overflow := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if overflow || n > (math.MaxInt64-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}
	if overflow {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -n
	}
	return n
}
