package intern

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternReturnsCanonicalCopy(t *testing.T) {
	in := New(4)

	a := strings.Clone(fmt.Sprintf("%s", "apple"))
	b := strings.Clone(fmt.Sprintf("%s", "apple"))
	require.NotSame(t, unsafe.StringData(a), unsafe.StringData(b))

	ca := in.Intern(a)
	cb := in.Intern(b)

	assert.Equal(t, "apple", ca)
	assert.Same(t, unsafe.StringData(ca), unsafe.StringData(cb))
}

func TestInternLenAndForget(t *testing.T) {
	in := New(4)

	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	assert.Equal(t, 2, in.Len())

	in.Forget("a")
	assert.Equal(t, 1, in.Len())

	in.Forget("does-not-exist")
	assert.Equal(t, 1, in.Len())
}

func TestInternConcurrentSafe(t *testing.T) {
	in := New(8)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in.Intern("shared-fragment")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, in.Len())
}
