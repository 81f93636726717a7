// Package snowflake hands out process-unique, time-ordered int64 ids.
package snowflake

import (
	"fmt"
	"sync"

	bsnowflake "github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *bsnowflake.Node
)

// Init configures the generator for the given node (0-1023).
func Init(nodeID int64) error {
	n, err := bsnowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("init snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next id. It panics if Init has never succeeded.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		panic("snowflake: NextID called before Init")
	}
	return n.Generate().Int64()
}
