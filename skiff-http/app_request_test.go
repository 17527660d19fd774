package skiff_http

import (
	"reflect"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name    string
		buffer  string
		method  HttpMethod
		path    string
		version string
	}{
		{
			name:    "full request line",
			buffer:  "GET /test/get HTTP/1.1\r\n\r\n",
			method:  Get,
			path:    "/test/get",
			version: "HTTP/1.1",
		},
		{
			name:    "lf only",
			buffer:  "POST /test/post HTTP/1.1\n\n",
			method:  Post,
			path:    "/test/post",
			version: "HTTP/1.1",
		},
		{
			name:   "missing version",
			buffer: "GET /\n",
			method: Get,
			path:   "/",
		},
		{
			name:   "method only",
			buffer: "DELETE\n",
			method: Delete,
		},
		{
			name:   "empty buffer",
			buffer: "",
		},
		{
			name:   "blank first line",
			buffer: "\r\n",
		},
		{
			name:    "unknown method is kept verbatim",
			buffer:  "BREW /coffee HTCPCP/1.0\r\n\r\n",
			method:  HttpMethod("BREW"),
			path:    "/coffee",
			version: "HTCPCP/1.0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequest([]byte(tt.buffer))
			if req.Method != tt.method {
				t.Errorf("Method = %q, want %q", req.Method, tt.method)
			}
			if req.Path != tt.path {
				t.Errorf("Path = %q, want %q", req.Path, tt.path)
			}
			if req.HttpVersion != tt.version {
				t.Errorf("HttpVersion = %q, want %q", req.HttpVersion, tt.version)
			}
		})
	}
}

func TestParseRequestHeaders(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   map[string]string
	}{
		{
			name:   "single header",
			buffer: "GET / HTTP/1.1\r\nHost: localhost:8080\r\n\r\n",
			want:   map[string]string{"Host": "localhost:8080"},
		},
		{
			name:   "multiple headers",
			buffer: "GET / HTTP/1.1\r\nHost: localhost\r\nAccept: text/html\r\n\r\n",
			want:   map[string]string{"Host": "localhost", "Accept": "text/html"},
		},
		{
			name:   "value keeps everything after first colon",
			buffer: "GET / HTTP/1.1\r\nReferer: http://localhost/\r\n\r\n",
			want:   map[string]string{"Referer": "http://localhost/"},
		},
		{
			name:   "no space after colon",
			buffer: "GET / HTTP/1.1\r\nX-Token:abc\r\n\r\n",
			want:   map[string]string{"X-Token": "abc"},
		},
		{
			name:   "line without colon is skipped",
			buffer: "GET / HTTP/1.1\r\nnot a header\r\nHost: localhost\r\n\r\n",
			want:   map[string]string{"Host": "localhost"},
		},
		{
			name:   "duplicate header last wins",
			buffer: "GET / HTTP/1.1\r\nHost: first\r\nHost: second\r\n\r\n",
			want:   map[string]string{"Host": "second"},
		},
		{
			name:   "names are case sensitive",
			buffer: "GET / HTTP/1.1\r\nhost: lower\r\nHost: upper\r\n\r\n",
			want:   map[string]string{"host": "lower", "Host": "upper"},
		},
		{
			name:   "no blank line before end of buffer",
			buffer: "GET / HTTP/1.1\nHost: localhost",
			want:   map[string]string{"Host": "localhost"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequest([]byte(tt.buffer))
			if !reflect.DeepEqual(req.Headers, tt.want) {
				t.Errorf("Headers = %v, want %v", req.Headers, tt.want)
			}
		})
	}
}

func TestParseRequestBody(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   string
	}{
		{
			name:   "no body",
			buffer: "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n",
			want:   "",
		},
		{
			name:   "single line body",
			buffer: "POST /test/post HTTP/1.1\r\nHost: localhost\r\n\r\nhello",
			want:   "hello\n",
		},
		{
			name:   "multi line body",
			buffer: "POST /test/post HTTP/1.1\r\n\r\nline one\nline two",
			want:   "line one\nline two\n",
		},
		{
			name:   "trailing newline does not double",
			buffer: "POST /test/post HTTP/1.1\r\n\r\nhello\n",
			want:   "hello\n",
		},
		{
			name:   "body without headers",
			buffer: "POST /test/post HTTP/1.1\n\nbody text",
			want:   "body text\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequest([]byte(tt.buffer))
			if req.Body != tt.want {
				t.Errorf("Body = %q, want %q", req.Body, tt.want)
			}
		})
	}
}
