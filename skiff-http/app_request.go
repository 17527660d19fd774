package skiff_http

import (
	"strings"
)

// HttpRequest is the parsed form of one raw request buffer. Fields hold
// whatever the client sent, byte for byte: the path is not decoded or
// normalized, header names keep their casing, and the method is compared
// literally during routing.
type HttpRequest struct {
	Method      HttpMethod
	Path        string
	HttpVersion string
	Headers     map[string]string
	Body        string
}

// ParseRequest splits a raw request buffer into an HttpRequest.
//
// The buffer is cut into lines on '\n'. The first line yields method, path
// and version; missing tokens leave the fields empty, so an empty or garbage
// buffer parses to an empty request rather than an error (it then misses
// every route downstream). Header lines follow until a line that is empty or
// a lone '\r'; each is split at the first colon, with one space after the
// colon and a trailing '\r' stripped from the value. Lines without a colon
// are skipped. On a repeated header name the last occurrence wins. Everything
// after the separator line is the body, each line re-joined with '\n'.
//
// There is no Content-Length or chunked handling: the caller hands over a
// single read's worth of bytes and anything beyond that was never read.
func ParseRequest(buffer []byte) *HttpRequest {
	req := &HttpRequest{
		Headers: make(map[string]string),
	}

	lines := strings.Split(string(buffer), "\n")
	tokens := strings.Fields(lines[0])
	if len(tokens) > 0 {
		req.Method = HttpMethod(tokens[0])
	}
	if len(tokens) > 1 {
		req.Path = tokens[1]
	}
	if len(tokens) > 2 {
		req.HttpVersion = tokens[2]
	}

	i := 1
	for i < len(lines) {
		line := lines[i]
		if line == "" || line == "\r" {
			i++
			break
		}
		i++
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		value := strings.TrimSuffix(line[colon+1:], "\r")
		value = strings.TrimPrefix(value, " ")
		req.Headers[line[:colon]] = value
	}

	// Splitting a buffer that ends in '\n' leaves a phantom empty final
	// element; drop it so the body round-trips.
	if i < len(lines) && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var body strings.Builder
	for ; i < len(lines); i++ {
		body.WriteString(lines[i])
		body.WriteByte('\n')
	}
	req.Body = body.String()

	return req
}
