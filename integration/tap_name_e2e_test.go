package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuntap-go/pkg/ifconfig"
	"tuntap-go/pkg/tuntap"
)

func TestTapLongName(t *testing.T) {
	requireRoot(t)
	tap, err := tuntap.WithName("averylonginterfacename").OpenTap()
	require.NoError(t, err)
	assert.Equal(t, "averylonginterf", tap.Name())

	ok, err := ifconfig.Exists("averylonginterf")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, ifconfig.Configure(tap.Name(), 1280))
	mtu, err := ifconfig.MTU(tap.Name())
	require.NoError(t, err)
	assert.Equal(t, 1280, mtu)

	require.NoError(t, tap.Close())
	ok, err = ifconfig.Exists("averylonginterf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutoNamedDevices(t *testing.T) {
	requireRoot(t)
	for _, mode := range []tuntap.Mode{tuntap.ModeTun, tuntap.ModeTap} {
		d, err := tuntap.NewBuilder().Open(mode)
		require.NoError(t, err)
		if mode == tuntap.ModeTun {
			assert.Regexp(t, `^tun[0-9]+$`, d.Name())
		} else {
			assert.Regexp(t, `^tap[0-9]+$`, d.Name())
		}
		require.NoError(t, d.Close())
	}
}
