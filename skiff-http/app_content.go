package skiff_http

import "strings"

const DefaultContentType = "application/octet-stream"

var extensionContentTypes = map[string]string{
	".html": "text/html",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".css":  "text/css",
	".js":   "application/javascript",
}

// ContentTypeFor maps a file name to a MIME type by its extension, the
// substring from the last dot onward. Unknown extensions and names without an
// extension both resolve to application/octet-stream.
func ContentTypeFor(filename string, log LogSink) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot > -1 {
		extension := filename[dot:]
		if contentType, ok := extensionContentTypes[extension]; ok {
			log.Log("INFO", "ContentTypeFor", "Extension match", "Content-Type found for", extension)
			return contentType
		}
		log.Log("WARN", "ContentTypeFor", "Extension mismatch", "No content type for", extension)
	}
	return DefaultContentType
}
