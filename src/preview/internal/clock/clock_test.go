package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestAfterFunc(t *testing.T) {
	fired := make(chan struct{})
	clock{}.AfterFunc(time.Microsecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestAfterFuncStop(t *testing.T) {
	timer := clock{}.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
}
