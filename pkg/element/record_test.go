package element

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordIdentity(t *testing.T) {
	r := require.New(t)

	note := packNote(&testNote{Body: "a"})
	defer note.Release()
	rule := ruleType.Pack(&testRule{Width: 2})
	defer rule.Release()

	r.True(note.Valid())
	r.True(note.Is(noteElem))
	r.False(note.Is(ruleElem))
	r.True(rule.Is(ruleElem))
	r.Same(noteElem, note.Type())

	// No two distinct types share a descriptor.
	r.NotSame(noteElem, ruleElem)
}

func TestUnpack(t *testing.T) {
	r := require.New(t)

	note := packNote(&testNote{Body: "a"})
	defer note.Release()

	n, ok := noteType.Unpack(note)
	r.True(ok)
	r.Equal("a", n.Body)

	_, ok = ruleType.Unpack(note)
	r.False(ok)
}

func TestReleaseDestroysOnce(t *testing.T) {
	r := require.New(t)

	var disposed atomic.Int32
	rec := packNote(&testNote{Body: "a", disposed: &disposed})

	dup := rec.Retain()
	rec.Release()
	r.Equal(int32(0), disposed.Load(), "live reference left")

	dup.Release()
	r.Equal(int32(1), disposed.Load())
}

func TestCloneOutlivesOriginal(t *testing.T) {
	r := require.New(t)

	var disposed atomic.Int32
	rec := packNote(&testNote{Body: "a", disposed: &disposed})

	clone := Clone(rec)
	r.True(Equal(rec, clone))

	// Dropping the original must not invalidate the clone.
	rec.Release()
	r.Equal(int32(0), disposed.Load())
	r.Equal(`note(body: "a")`, Repr(clone))

	clone.Release()
	r.Equal(int32(1), disposed.Load())
}

func TestConcurrentRetainRelease(t *testing.T) {
	r := require.New(t)

	const goroutines = 64

	var disposed atomic.Int32
	rec := packNote(&testNote{Body: "a", disposed: &disposed})

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		dup := rec.Retain()
		go func() {
			defer wg.Done()
			inner := dup.Retain()
			inner.Release()
			dup.Release()
		}()
	}
	wg.Wait()

	r.Equal(int32(0), disposed.Load(), "original reference still live")
	rec.Release()
	r.Equal(int32(1), disposed.Load(), "destruction must run exactly once")
}
