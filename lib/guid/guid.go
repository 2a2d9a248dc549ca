/*
	`guid.New` generates a short string that functions as a unique identifier.

	IDs generated in the same process occur in roughly chronological runs,
	which is nothing but a politeness to humans reading logs: runtime
	instances and cells created around the same time cluster together.
	They're lowercase, alphanumeric, and split by one non-semantic dash for
	the eyes' sake.

	These are *not* uuids in any rfc4122 sense of the word.  There is no
	canonical binary form and no way back to a number; this is a random ID
	generator, not a serialization format.  Consumers are advised to wrap
	these in their own string types to keep different kinds of IDs apart.
*/
package guid

import (
	realrand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// base32 space, ascii-ordered, visually-confusable characters dropped.
var chars = [32]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'k', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'v', 'w', 'x', 'y', 'z',
}

const radix = 32

// timexxxx-randxxxx; 8 chars of millisecond time rolls about every 34 years,
// 8 chars of random is a trillion values per millisecond.  plenty.
const size = 8 + 1 + 8

var (
	mu  sync.Mutex
	rnd *rand.Rand
)

func init() {
	var seed int64
	binary.Read(realrand.Reader, binary.LittleEndian, &seed)
	rnd = rand.New(rand.NewSource(seed))
}

func New() string {
	var id [size]byte
	id[8] = '-'
	timeMs := time.Now().UTC().UnixNano() / 1e6
	for i := 7; i >= 0; i-- {
		id[i] = chars[timeMs%radix]
		timeMs /= radix
	}
	mu.Lock()
	for i := 9; i < size; i++ {
		id[i] = chars[rnd.Intn(radix)]
	}
	mu.Unlock()
	return string(id[:])
}
