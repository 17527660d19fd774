package skiff_http

import (
	"strconv"
	"strings"
)

// HttpResponse is a synthesized response, built fresh for every connection
// and discarded once written.
type HttpResponse struct {
	StatusCode  StatusCode
	Body        string
	ContentType string
}

// Build serializes the response into wire bytes: status line, Content-Type,
// Content-Length (the body's byte length), a blank line, then the body.
//
// Lines are terminated with bare '\n', not CRLF. Browsers and curl accept
// the loose framing and it is part of the server's observable behavior, so
// it stays.
func (r *HttpResponse) Build() []byte {
	var output strings.Builder
	output.WriteString("HTTP/1.1 ")
	output.WriteString(strconv.Itoa(int(r.StatusCode)))
	output.WriteString(" ")
	output.WriteString(ReasonPhrase(r.StatusCode))
	output.WriteString("\nContent-Type: ")
	output.WriteString(r.ContentType)
	output.WriteString("\nContent-Length: ")
	output.WriteString(strconv.Itoa(len(r.Body)))
	output.WriteString("\n\n")
	output.WriteString(r.Body)
	return []byte(output.String())
}
