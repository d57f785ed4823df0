package source

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// fingerprintBlock is the number of elements encoded per hasher write.
const fingerprintBlock = 4096

// Fingerprint returns the xxh3 digest of data's little-endian encoding.
//
// Equal sequences always produce equal fingerprints, so comparing the value
// before and after a summation detects a strategy that wrote to its input.
func Fingerprint(data []int32) uint64 {
	h := xxh3.New()

	var buf [fingerprintBlock * 4]byte
	for len(data) > 0 {
		n := min(len(data), fingerprintBlock)
		for i, v := range data[:n] {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(v)) //nolint:gosec
		}
		_, _ = h.Write(buf[:n*4])
		data = data[n:]
	}

	return h.Sum64()
}
