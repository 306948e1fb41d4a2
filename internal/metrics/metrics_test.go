package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryIncAdd(t *testing.T) {
	reg := NewRegistry()

	reg.Inc(ReadingsTotal)
	reg.Inc(ReadingsTotal)
	reg.Add(AlertsTotal, 3)

	snap := reg.Snapshot()
	assert.Equal(t, int64(2), snap[string(ReadingsTotal)])
	assert.Equal(t, int64(3), snap[string(AlertsTotal)])
}

func TestRegistryUnsetKeyAbsentFromSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Inc(ReadingsTotal)

	snap := reg.Snapshot()
	_, ok := snap[string(AlertsCriticalTotal)]
	assert.False(t, ok, "untouched counters should not appear")
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Inc(ReadingsTotal)

	snap := reg.Snapshot()
	snap[string(ReadingsTotal)] = 99

	assert.Equal(t, int64(1), reg.Snapshot()[string(ReadingsTotal)],
		"mutating a snapshot must not affect the registry")
}

func TestRegistryConcurrentInc(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Inc(ReadingsTotal)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), reg.Snapshot()[string(ReadingsTotal)])
}
