package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_RegisteredUnderName(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	require.Equal(t, CodecName, c.Name())
}

func TestCodec_RoundTripsResponseTypes(t *testing.T) {
	c := encoding.GetCodec(CodecName)

	released := time.Date(1972, 3, 24, 0, 0, 0, 0, time.UTC)
	in := &ListMoviesResponse{
		Data: []*Movie{
			{ID: "m1", Title: "The Godfather", Runtime: 175, Released: released},
			{ID: "m2", Title: "Alien"},
		},
		NextCursor: "c1",
	}

	data, err := c.Marshal(in)
	require.NoError(t, err)

	out := &ListMoviesResponse{}
	require.NoError(t, c.Unmarshal(data, out))
	require.Equal(t, in, out)
}

func TestCodec_EmptyCursorOmitted(t *testing.T) {
	c := encoding.GetCodec(CodecName)

	data, err := c.Marshal(&ListMoviesResponse{Data: []*Movie{}})
	require.NoError(t, err)
	require.NotContains(t, string(data), "next_cursor")
}
