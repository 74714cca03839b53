package snapshot

import (
	"encoding/binary"
	"io"

	"github.com/opencontainers/go-digest"
)

// CacheKey derives the entry key for an ordered list of requested task names:
// the hex SHA-256 digest of the names, each prefixed with its uvarint length so
// that no two different lists hash the same input.
func CacheKey(taskNames []string) string {
	d := digest.SHA256.Digester()
	h := d.Hash()
	var prefix [binary.MaxVarintLen64]byte
	for _, name := range taskNames {
		n := binary.PutUvarint(prefix[:], uint64(len(name)))
		_, _ = h.Write(prefix[:n])
		_, _ = io.WriteString(h, name)
	}
	return d.Digest().Encoded()
}
