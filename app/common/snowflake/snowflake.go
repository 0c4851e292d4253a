package snowflake

import (
	"hash/fnv"
	"os"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

// SetNodeID overrides the derived node ID (0-1023). Call once at bootstrap,
// before the first Next.
func SetNodeID(id int64) error {
	var err error
	once.Do(func() {})
	node, err = bwsnowflake.NewNode(id & 0x3FF)
	return err
}

func initNode() {
	if node != nil {
		return
	}
	// derive the 10-bit node from a hostname hash
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	id := int64(h.Sum32()) & 0x3FF
	n, err := bwsnowflake.NewNode(id)
	if err != nil {
		n, _ = bwsnowflake.NewNode(1)
	}
	node = n
}

// Next returns a new snowflake id.
func Next() int64 {
	once.Do(initNode)
	return node.Generate().Int64()
}
