//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

func testRecord(id string) *ValidationRecord {
	result := scriptoutput.Parse("cpu=1", scriptoutput.ModeCollection)
	return newRecord(id, result, time.Now().UTC())
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore(4)
	store.Put(testRecord("a"))

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, got.Summary.Total)

	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestStore_EvictsOldest(t *testing.T) {
	store := NewStore(3)
	for i := 0; i < 5; i++ {
		store.Put(testRecord(fmt.Sprintf("r%d", i)))
	}

	assert.Equal(t, 3, store.Len())
	_, ok := store.Get("r0")
	assert.False(t, ok)
	_, ok = store.Get("r1")
	assert.False(t, ok)
	_, ok = store.Get("r4")
	assert.True(t, ok)
}

func TestStore_GetReturnsDetachedCopy(t *testing.T) {
	store := NewStore(2)
	store.Put(testRecord("a"))

	first, ok := store.Get("a")
	require.True(t, ok)
	require.Len(t, first.Datapoints, 1)

	// Mutating the returned copy must not leak into the store.
	first.Datapoints[0].Name = "tampered"
	first.Summary.Errors = 99

	second, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "cpu", second.Datapoints[0].Name)
	assert.Equal(t, 0, second.Summary.Errors)
}
