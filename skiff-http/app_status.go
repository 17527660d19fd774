package skiff_http

type StatusCode int

const (
	StatusOK               StatusCode = 200
	StatusNotFound         StatusCode = 404
	StatusMethodNotAllowed StatusCode = 405
)

var StatusCodeDescriptions = map[StatusCode]string{
	StatusOK:               "OK",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
}

// ReasonPhrase returns the status line text for a code. Codes outside the
// table fall back to the 405 phrase; the server only ever produces 200, 404
// and 405, so the fallback is never visible in practice.
func ReasonPhrase(code StatusCode) string {
	if desc, ok := StatusCodeDescriptions[code]; ok {
		return desc
	}
	return StatusCodeDescriptions[StatusMethodNotAllowed]
}
