// Package skiff_http is a deliberately small HTTP/1.1 server built directly
// on TCP. One goroutine owns the listening socket and handles connections
// strictly one at a time: a single read, one parse, one route lookup, one
// write, close. There is no keep-alive, no concurrency and no timeout
// handling; the point is a transparent request pipeline, not throughput.
package skiff_http

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
)

const (
	DefaultPort       = 8080
	DefaultBacklog    = 10
	DefaultBufferSize = 3000
)

// HttpServer owns the listening socket and drives the request pipeline.
// Fields may be adjusted between construction and Initialize; after Run
// starts they must be left alone.
type HttpServer struct {
	Port int
	// Backlog is the intended pending-connection queue depth. net.Listen
	// does not expose the accept backlog, so the kernel's setting applies;
	// the field documents intent.
	Backlog int
	// BufferSize bounds the single read performed per connection. Bytes a
	// client sends beyond it are never read, so oversized requests truncate
	// silently.
	BufferSize int
	Log        LogSink

	handler  *RequestHandler
	listener net.Listener
}

// NewHttpServer builds a server around an immutable route table. The table
// is captured by the handler here and never changes for the life of the
// process.
func NewHttpServer(port int, routes RouteTable, log LogSink) *HttpServer {
	return &HttpServer{
		Port:       port,
		Backlog:    DefaultBacklog,
		BufferSize: DefaultBufferSize,
		Log:        log,
		handler:    NewRequestHandler(routes, log),
	}
}

// Initialize binds the listening socket. Any failure here is fatal to
// startup: it is logged, returned, and the caller is expected to exit rather
// than retry. net.Listen sets address reuse on POSIX systems, so a restart
// does not trip over sockets in TIME_WAIT.
func (s *HttpServer) Initialize() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		s.Log.Log("ERROR", "HttpServer", "Initialize", "Binding socket", "failed: "+err.Error())
		return err
	}
	s.listener = listener
	s.Log.Log("INFO", "HttpServer", "Initialize", "Server initialization", "successful")
	return nil
}

// Addr reports the bound listener address. Valid after Initialize.
func (s *HttpServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Close shuts the listening socket, which makes Run return after it finishes
// any connection it is currently serving.
func (s *HttpServer) Close() error {
	return s.listener.Close()
}

// Run is the accept loop. Each connection goes through the full pipeline
// (accept, read once, parse, route, build, write once, close) on this one
// goroutine, so connections are served strictly in arrival order and a silent
// client stalls the server until it disconnects. Accept failures are logged
// and the loop continues; only a closed listener ends it.
func (s *HttpServer) Run() {
	s.Log.Log("INFO", "HttpServer", "Run", "Server start", "Waiting for connections...")
	buffer := make([]byte, s.BufferSize)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.Log.Log("INFO", "HttpServer", "Run", "Listener closed", "Server shutdown")
				return
			}
			s.Log.Log("ERROR", "HttpServer", "Run", "Accepting connection", "failed: "+err.Error())
			continue
		}
		connId := uuid.NewString()
		s.Log.Log("INFO", "HttpServer", "Run", "Connection established", connId+" from "+conn.RemoteAddr().String())

		// One blocking read; whatever arrived in it is the whole request.
		n, _ := conn.Read(buffer)
		request := ParseRequest(buffer[:n])
		s.Log.Log("INFO", "HttpServer", "Run", "Request received", connId+" Path: "+request.Path)

		response := s.handler.Handle(request)
		wire := response.Build()

		// A single write, no partial-write retry. A short write costs the
		// client the tail of the response and nothing else.
		conn.Write(wire)
		s.Log.Log("INFO", "HttpServer", "Run", "Response sent", fmt.Sprintf("%s Content Length: %d", connId, len(wire)))
		conn.Close()
	}
}
