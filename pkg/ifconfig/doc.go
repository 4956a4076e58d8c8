// Package ifconfig configures the kernel side of an interface: address,
// MTU and link state. Only Linux is supported; elsewhere every function
// returns an error.
package ifconfig
