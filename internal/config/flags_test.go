package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 8080, a.Port)
	assert.Equal(t, "localhost:8080", a.String())
}

func TestNetAddress_SetIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:9000"))
	assert.Equal(t, "127.0.0.1:9000", a.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	cases := []string{
		"no-port",
		"localhost:notaport",
		"localhost:0",
		"not-an-ip:8080",
	}
	for _, input := range cases {
		var a NetAddress
		assert.Error(t, a.Set(input), "input %q should be rejected", input)
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
