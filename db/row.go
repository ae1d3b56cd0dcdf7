package db

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	columnUsernameSize = 32
	columnEmailSize    = 255

	idSize         = 4
	usernameSize   = columnUsernameSize + 1
	emailSize      = columnEmailSize + 1
	idOffset       = 0
	usernameOffset = idOffset + idSize
	emailOffset    = usernameOffset + usernameSize
	rowSize        = idSize + usernameSize + emailSize
)

// Row is one fixed-layout record. The string buffers are NUL padded;
// the meaningful value is the prefix up to the first NUL.
type Row struct {
	ID       uint32
	Username [usernameSize]byte
	Email    [emailSize]byte
}

func newRow(id uint32, username, email string) Row {
	row := Row{ID: id}
	copy(row.Username[:], username)
	copy(row.Email[:], email)
	return row
}

func (r *Row) serialize(dst []byte) {
	binary.LittleEndian.PutUint32(dst[idOffset:], r.ID)
	copy(dst[usernameOffset:usernameOffset+usernameSize], r.Username[:])
	copy(dst[emailOffset:emailOffset+emailSize], r.Email[:])
}

func (r *Row) deserialize(src []byte) {
	r.ID = binary.LittleEndian.Uint32(src[idOffset:])
	copy(r.Username[:], src[usernameOffset:usernameOffset+usernameSize])
	copy(r.Email[:], src[emailOffset:emailOffset+emailSize])
}

func (r *Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, cString(r.Username[:]), cString(r.Email[:]))
}

// cString cuts buf at the first NUL.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
