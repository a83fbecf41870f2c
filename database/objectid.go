package database

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// NewObjectID returns a 24 character hex id: a 4 byte big-endian unix
// timestamp followed by 8 random bytes.
func NewObjectID(now time.Time) string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(now.Unix()))
	u := uuid.New()
	// skip the version and variant bytes of the v4 uuid
	copy(b[4:10], u[10:16])
	copy(b[10:12], u[0:2])
	return hex.EncodeToString(b[:])
}

func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

