package client

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

// startFakeServer accepts a single connection and answers each request with
// the next canned response, recording the requests it saw.
func startFakeServer(t *testing.T, responses []protocol.Response) (addr string, requests *[]protocol.Request) {
	t.Helper()

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listen.Close() })

	seen := &[]protocol.Request{}

	go func() {
		conn, err := listen.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		dec := json.NewDecoder(conn)
		enc := json.NewEncoder(conn)
		for _, resp := range responses {
			var req protocol.Request
			if err := dec.Decode(&req); err != nil {
				return
			}
			*seen = append(*seen, req)
			if err := enc.Encode(resp); err != nil {
				return
			}
		}
	}()

	return listen.Addr().String(), seen
}

func TestDial_Unavailable(t *testing.T) {
	// grab a free port, then release it so the dial is refused
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listen.Addr().String()
	listen.Close()

	_, err = Dial(addr)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_TokenLifecycle(t *testing.T) {
	addr, requests := startFakeServer(t, []protocol.Response{
		{Status: protocol.StatusOK, Message: protocol.MsgRegistered, Token: "tok-1"},
		{Status: protocol.StatusOK},
	})

	c, err := Dial(addr)
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, c.IsLoggedIn())

	resp, err := c.Do(protocol.ActionRegister, protocol.Body{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgRegistered, resp.Message)
	assert.True(t, c.IsLoggedIn())

	_, err = c.Do(protocol.ActionList, protocol.Body{})
	require.NoError(t, err)

	require.Len(t, *requests, 2)
	assert.Empty(t, (*requests)[0].Token, "first request precedes any token")
	assert.Equal(t, "tok-1", (*requests)[1].Token, "token from the server must ride along afterwards")

	c.Logout()
	assert.False(t, c.IsLoggedIn())
}

func TestClient_RemoteError(t *testing.T) {
	addr, _ := startFakeServer(t, []protocol.Response{
		{Status: protocol.StatusError, Message: protocol.MsgUserExists},
	})

	c, err := Dial(addr)
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Do(protocol.ActionRegister, protocol.Body{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, ErrRemote)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.MsgUserExists, resp.Message)
	assert.False(t, c.IsLoggedIn(), "an error response must not install a token")
}
