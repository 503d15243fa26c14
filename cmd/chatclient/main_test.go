package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToFrames(t *testing.T) {
	req := require.New(t)

	req.Nil(toFrames("   "))

	frames := toFrames("/open bob")
	req.Len(frames, 1)
	req.Equal("bob", frames[0].GetOpenDirect().GetPeerId())

	frames = toFrames("/select conv-1")
	req.Len(frames, 1)
	req.Equal("conv-1", frames[0].GetSelect().GetConversationId())

	// Plain text types then sends
	frames = toFrames("  hello bob ")
	req.Len(frames, 2)
	req.Equal("hello bob", frames[0].GetInput().GetText())
	req.Equal("hello bob", frames[1].GetSend().GetText())
}
