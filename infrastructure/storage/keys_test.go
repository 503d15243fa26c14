package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_Escapes_Separator(t *testing.T) {
	req := require.New(t)

	req.Equal("pair:a%3Ab:c", string(key("pair", "a:b", "c")))
	req.Equal("pair:a:b%3Ac", string(key("pair", "a", "b:c")))
	req.Equal("member:a:", string(prefix("member", "a")))
	req.Equal("member:a%3Ab:", string(prefix("member", "a:b")))

	// The escape character is escaped too
	req.NotEqual(string(key("conv", "a%3Ab")), string(key("conv", "a:b")))
}

func TestLastSegment_Unescapes(t *testing.T) {
	req := require.New(t)

	for _, id := range []string{"plain", "a:b", "100%", "%3A", "::"} {
		req.Equal(id, lastSegment(key("member", "p", "0000000000000000001", id)))
	}
}
