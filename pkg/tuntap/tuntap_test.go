package tuntap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsString(t *testing.T) {
	cases := []struct {
		f    Flags
		want string
	}{
		{FlagTun | FlagNoPacketInfo, "tun|no_pi"},
		{FlagTap | FlagMultiQueue | FlagNoPacketInfo, "tap|multi_queue|no_pi"},
		{flagDetachQueue, "detach_queue"},
		{0, "0x0000"},
		{FlagTun | 0x0020, "tun|0x0020"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.f.String())
	}
}

func TestModeFlag(t *testing.T) {
	assert.Equal(t, FlagTun, ModeTun.flag())
	assert.Equal(t, FlagTap, ModeTap.flag())
	assert.Zero(t, Mode(7).flag())
	assert.Equal(t, "tap", ModeTap.String())
	assert.Equal(t, "Mode(-1)", Mode(-1).String())
}

func TestQueueIsNotMultiQueue(t *testing.T) {
	var q Device = &Queue{}
	_, ok := q.(MultiQueue)
	assert.False(t, ok, "a Queue must not open further queues")

	var tun Device = &Tun{}
	_, ok = tun.(MultiQueue)
	assert.False(t, ok)

	var mq Device = &MultiQueueTap{}
	_, ok = mq.(MultiQueue)
	assert.True(t, ok)
}

func TestCloseWithoutFile(t *testing.T) {
	var h handle
	assert.NoError(t, h.Close())
}
