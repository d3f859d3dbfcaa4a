package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "serve")
			panic("listener closed")
		},
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"serve",
		"after ended",
		"after recovered",
		"listener closed",
	}, res)
	if assert.NotNil(t, ev) {
		assert.Equal(t, "listener closed", ev.Panic)
		assert.NotEmpty(t, ev.Stack)
	}
}

func TestRecoverableGoReturns(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	assert.Nil(t, ev)
	assert.False(t, ok)
	assert.True(t, done)
}
