package hashmap_test

import (
	"fmt"
	"sync"
	"testing"

	"chainmap/hashmap"

	"github.com/goose-lang/std"
	"github.com/stretchr/testify/assert"
)

func TestLockedBasic(t *testing.T) {
	assert := assert.New(t)

	l := hashmap.NewLocked[uint64]()
	_, ok := l.Get("a")
	assert.False(ok)

	l.Set("a", 10)
	v, ok := l.Get("a")
	assert.True(ok)
	assert.Equal(uint64(10), v)
	assert.True(l.Has("a"))
	assert.Equal(uint64(1), l.Len())
	assert.Equal(uint64(16), l.Cap())

	l.Update("a", func(old uint64, ok bool) uint64 { return old + 1 })
	v, _ = l.Get("a")
	assert.Equal(uint64(11), v)

	assert.Equal([]string{"a"}, l.Keys())
	assert.Equal([]uint64{11}, l.Values())
	assert.Equal([]hashmap.Entry[uint64]{{Key: "a", Value: 11}}, l.Entries())

	assert.True(l.Remove("a"))
	assert.False(l.Remove("a"))
	l.Set("b", 1)
	l.Clear()
	assert.Equal(uint64(0), l.Len())
}

func TestLockedConcurrentSet(t *testing.T) {
	assert := assert.New(t)

	l := hashmap.NewLocked[uint64]()
	// enough keys per writer to force several resizes while others write
	var handles []*std.JoinHandle
	for w := 0; w < 4; w++ {
		h := std.Spawn(func() {
			for i := 0; i < 200; i++ {
				l.Set(fmt.Sprintf("w%d-%d", w, i), uint64(i))
			}
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Join()
	}

	assert.Equal(uint64(800), l.Len())
	assert.Equal(uint64(2048), l.Cap())
	for w := 0; w < 4; w++ {
		for i := 0; i < 200; i++ {
			v, ok := l.Get(fmt.Sprintf("w%d-%d", w, i))
			assert.True(ok)
			assert.Equal(uint64(i), v)
		}
	}
}

func TestLockedConcurrentUpdate(t *testing.T) {
	l := hashmap.NewLocked[uint64]()

	var wg sync.WaitGroup
	wg.Add(100)
	for j := 0; j < 100; j++ {
		go func() {
			l.Update("counter", func(old uint64, ok bool) uint64 {
				return old + 1
			})
			wg.Done()
		}()
	}
	wg.Wait()

	v, _ := l.Get("counter")
	assert.Equal(t, uint64(100), v)
}
