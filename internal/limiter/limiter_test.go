package limiter

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAllowAndRelease(t *testing.T) {
    l := New(2)

    rel1, ok := l.Allow()
    require.True(t, ok)
    rel2, ok := l.Allow()
    require.True(t, ok)
    assert.Equal(t, 2, l.Inflight())

    _, ok = l.Allow()
    assert.False(t, ok, "saturated limiter must reject")

    rel1()
    _, ok = l.Allow()
    assert.True(t, ok)

    rel2()
}

func TestZeroFallsBackToDefault(t *testing.T) {
    l := New(0)
    for i := 0; i < 4; i++ {
        _, ok := l.Allow()
        require.True(t, ok)
    }
    _, ok := l.Allow()
    assert.False(t, ok)
}
