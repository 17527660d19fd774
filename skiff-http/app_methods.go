package skiff_http

// HttpMethod is the request verb as it appeared on the wire. Routing compares
// methods by literal string equality, so any token a client sends is carried
// through verbatim.
type HttpMethod string

func (m HttpMethod) String() string {
	return string(m)
}

const (
	Get    HttpMethod = "GET"
	Post   HttpMethod = "POST"
	Put    HttpMethod = "PUT"
	Patch  HttpMethod = "PATCH"
	Delete HttpMethod = "DELETE"
)
