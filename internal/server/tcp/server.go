// Package tcp carries the request/response protocol over plain TCP.
// Each connection gets its own goroutine running a decode/handle/write
// loop; the loop ends when the peer disconnects or sends a payload the
// router reports as fatal.
package tcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/logging"
)

// Handler processes one raw request payload. A returned error is fatal
// for the connection that produced the payload.
type Handler interface {
	Handle(ctx context.Context, payload []byte) ([]byte, error)
}

type Server struct {
	address string
	handler Handler
	logger  logging.Logger
}

func NewServer(a string, h Handler, l logging.Logger) *Server {
	return &Server{
		address: a,
		handler: h,
		logger:  l.With("module", "tcp_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping TCP server...")
		listen.Close()
	}()

	s.logger.Info(ctx, "Starting TCP server", "address", s.address)

	var wg sync.WaitGroup

	// starts accepting incoming connections
	for {
		conn, err := listen.Accept()
		if err != nil {
			// listener closed on shutdown
			if ctx.Err() != nil {
				break
			}
			s.logger.Error(ctx, "Accept error", "error", err.Error())
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, conn)
		}()
	}

	wg.Wait()
	return nil
}

// serveConn runs one connection's request loop. Requests arrive as a
// stream of JSON documents; each produces exactly one response document.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	peer := conn.RemoteAddr().String()
	s.logger.Info(ctx, "Client connected", "peer", peer)

	dec := json.NewDecoder(conn)
	for {
		var payload json.RawMessage
		if err := dec.Decode(&payload); err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Error(ctx, "Decode error", "peer", peer, "error", err.Error())
			}
			break
		}

		resp, err := s.handler.Handle(ctx, payload)
		if err != nil {
			s.logger.Error(ctx, "Fatal request error", "peer", peer, "error", err.Error())
			break
		}

		if _, err := conn.Write(resp); err != nil {
			s.logger.Error(ctx, "Write error", "peer", peer, "error", err.Error())
			break
		}
	}

	s.logger.Info(ctx, "Client disconnected", "peer", peer)
}
