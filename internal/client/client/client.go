package client

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

const dialTimeout = 3 * time.Second

// Client is a FileKeeper API client speaking the JSON protocol over one
// TCP connection. It is not safe for concurrent use; the CLI drives it
// from a single goroutine.
type Client struct {
	conn  net.Conn
	enc   *json.Encoder
	dec   *json.Decoder
	token string
}

// Dial connects to the server at addr. A connection failure is reported
// as ErrUnavailable.
func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	return &Client{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
	}, nil
}

// Do sends one request and waits for its response. The stored session token
// is attached automatically; a token returned by the server replaces it.
//
// A response with an error status is returned together with an ErrRemote
// wrapping the server's message, so callers can either inspect the response
// or just surface the error.
func (c *Client) Do(action string, body protocol.Body) (*protocol.Response, error) {
	req := protocol.Request{Action: action, Body: body, Token: c.token}

	if err := c.enc.Encode(req); err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	resp := &protocol.Response{}
	if err := c.dec.Decode(resp); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.Token != "" {
		c.token = resp.Token
	}

	if resp.Status != protocol.StatusOK {
		return resp, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	return resp, nil
}

// IsLoggedIn reports whether the client holds a session token.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout forgets the session token. The server keeps no session state,
// so dropping the token is the whole operation.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) Close() error {
	return c.conn.Close()
}
