package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/recollect/core"
)

// Key prefixes for different data types
const (
	contentRecordPrefix = "conrec"
	ownerIndexPrefix    = "conown"
)

// makeContentRecordKey generates a key for a content record by ID.
func makeContentRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", contentRecordPrefix, id))
}

// makeOwnerIndexKey generates a composite key for the owner index.
// Format: prefix:owner\x00id
// The NUL separator keeps one owner's range from bleeding into another's
// when one owner name is a prefix of the other.
func makeOwnerIndexKey(owner string, id core.ID) []byte {
	prefix := ownerIndexPrefix + ":"
	totalSize := len(prefix) + len(owner) + 1 + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(owner))
	buf[offset] = 0x00
	offset++
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialOwnerIndexKey generates a partial key for scanning an owner's
// records. Format: prefix:owner\x00
func makePartialOwnerIndexKey(owner string) []byte {
	prefix := ownerIndexPrefix + ":"
	totalSize := len(prefix) + len(owner) + 1
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(owner))
	buf[offset] = 0x00
	return buf
}
