//go:build linux

package ifconfig

import (
	"fmt"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuntap-go/pkg/tuntap"
)

func requireRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() != 0 {
		t.Skip("requires root")
	}
	if _, err := os.Stat(tuntap.DevicePath); err != nil {
		t.Skipf("%s: %v", tuntap.DevicePath, err)
	}
}

func TestExistsUnknown(t *testing.T) {
	ok, err := Exists("nosuchif0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigureUnknown(t *testing.T) {
	assert.Error(t, Configure("nosuchif0", 1400))
	assert.Error(t, Delete("nosuchif0"))
}

func TestConfigure(t *testing.T) {
	requireRoot(t)
	name := fmt.Sprintf("ic%d", os.Getpid()%100000)
	tun, err := tuntap.WithName(name).OpenTun()
	require.NoError(t, err)
	defer tun.Close()

	require.NoError(t, Configure(name, 1400))
	mtu, err := MTU(name)
	require.NoError(t, err)
	assert.Equal(t, 1400, mtu)

	require.NoError(t, ConfigureIPv4(name, "10.77.9.1/24"))
	ifi, err := net.InterfaceByName(name)
	require.NoError(t, err)
	assert.NotZero(t, ifi.Flags&net.FlagUp)
	addrs, err := ifi.Addrs()
	require.NoError(t, err)
	var got []string
	for _, a := range addrs {
		got = append(got, a.String())
	}
	assert.Contains(t, got, "10.77.9.1/24")

	require.NoError(t, Down(name))
	ifi, err = net.InterfaceByName(name)
	require.NoError(t, err)
	assert.Zero(t, ifi.Flags&net.FlagUp)
}

func TestDeletePersistent(t *testing.T) {
	requireRoot(t)
	name := fmt.Sprintf("ip%d", os.Getpid()%100000)
	tap, err := tuntap.WithName(name).Persist(true).OpenTap()
	require.NoError(t, err)
	require.NoError(t, tap.Close())

	ok, err := Exists(name)
	require.NoError(t, err)
	assert.True(t, ok, "persistent interface vanished on close")

	require.NoError(t, Delete(name))
	ok, err = Exists(name)
	require.NoError(t, err)
	assert.False(t, ok)
}
