package skiff_http

import (
	"fmt"
	"os"
	"strings"
)

// RouteEntry describes one registered path: the methods it answers to and
// where its content comes from. When IsFile is set, Content is a file path
// resolved against the process working directory and read in full on every
// request; otherwise Content is served as a literal HTML body.
type RouteEntry struct {
	AllowedMethods []HttpMethod
	Content        string
	IsFile         bool
}

// RouteTable maps exact request paths to their entries. Lookup is plain
// string equality: no prefixes, no parameters, no trailing-slash or query
// handling. The table is built once and never mutated afterward.
type RouteTable map[string]RouteEntry

// DefaultRoutes returns the route table the skiff binary serves.
func DefaultRoutes() RouteTable {
	return RouteTable{
		"/":              {AllowedMethods: []HttpMethod{Get}, Content: "./templates/index.html", IsFile: true},
		"/test/get":      {AllowedMethods: []HttpMethod{Get}, Content: "./templates/test.html", IsFile: true},
		"/test/post":     {AllowedMethods: []HttpMethod{Post}, Content: "./templates/test.html", IsFile: true},
		"/test/put":      {AllowedMethods: []HttpMethod{Put}, Content: "./templates/test.html", IsFile: true},
		"/test/post-get": {AllowedMethods: []HttpMethod{Get, Post}, Content: "./templates/test.html", IsFile: true},
		"/favicon.ico":   {AllowedMethods: []HttpMethod{Get}, Content: "./static/img/favicon.jpg", IsFile: true},
	}
}

// RequestHandler resolves parsed requests against a fixed route table.
type RequestHandler struct {
	routes RouteTable
	log    LogSink
}

func NewRequestHandler(routes RouteTable, log LogSink) *RequestHandler {
	return &RequestHandler{
		routes: routes,
		log:    log,
	}
}

// Handle resolves a request to a response. Every outcome is a well-formed
// response; routing failures become 404 or 405 pages rather than errors.
func (h *RequestHandler) Handle(request *HttpRequest) *HttpResponse {
	route, found := h.routes[request.Path]
	if !found {
		h.log.Log("ERROR", "RequestHandler", "Handle", "Route not found", "No route for "+request.Path)
		return &HttpResponse{
			StatusCode:  StatusNotFound,
			Body:        fmt.Sprintf("<html><body>404 Route Not Found: %s</body></html>", request.Path),
			ContentType: "text/html",
		}
	}

	if !methodAllowed(route.AllowedMethods, request.Method) {
		allowed := joinMethods(route.AllowedMethods)
		h.log.Log("ERROR", "RequestHandler", "Handle", "Method not allowed", fmt.Sprintf("Method: %s not allowed for %s", request.Method, request.Path))
		return &HttpResponse{
			StatusCode:  StatusMethodNotAllowed,
			Body:        fmt.Sprintf("<html><body>405 Method Not Allowed: %s not allowed for %s. Allowed methods: %s</body></html>", request.Method, request.Path, allowed),
			ContentType: "text/html",
		}
	}

	if route.IsFile {
		content, err := os.ReadFile(route.Content)
		if err != nil {
			h.log.Log("ERROR", "RequestHandler", "Handle", "File not found", "Failed to open "+route.Content)
			return &HttpResponse{
				StatusCode:  StatusNotFound,
				Body:        fmt.Sprintf("<html><body>404 Resource Not Found: %s</body></html>", request.Path),
				ContentType: "text/html",
			}
		}
		h.log.Log("INFO", "RequestHandler", "Handle", "File served", "Serving content from "+route.Content)
		return &HttpResponse{
			StatusCode:  StatusOK,
			Body:        string(content),
			ContentType: ContentTypeFor(route.Content, h.log),
		}
	}

	return &HttpResponse{
		StatusCode:  StatusOK,
		Body:        route.Content,
		ContentType: "text/html",
	}
}

func methodAllowed(allowed []HttpMethod, method HttpMethod) bool {
	for i := range allowed {
		if allowed[i] == method {
			return true
		}
	}
	return false
}

func joinMethods(methods []HttpMethod) string {
	names := make([]string, 0, len(methods))
	for i := range methods {
		names = append(names, string(methods[i]))
	}
	return strings.Join(names, " ")
}
