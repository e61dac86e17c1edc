package export

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// Android WebView clients cannot receive a native file download. The app
// wrapper announces itself via the X-Requested-With header (it carries the
// wrapper package name); navigation requests additionally accept text/html.
func isWebView(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") != ""
}

func isNavigation(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// apkExportEnvelope is the WebView non-navigation response: the wrapper
// decodes contentBase64 and saves it on-device. Decoded length always equals
// OriginalSize.
type apkExportEnvelope struct {
	ApkExport     bool   `json:"apkExport"`
	Filename      string `json:"filename"`
	Mime          string `json:"mime"`
	ContentBase64 string `json:"contentBase64"`
	OriginalSize  int    `json:"originalSize"`
}

func newApkExport(filename, mime string, content []byte) apkExportEnvelope {
	return apkExportEnvelope{
		ApkExport:     true,
		Filename:      filename,
		Mime:          mime,
		ContentBase64: base64.StdEncoding.EncodeToString(content),
		OriginalSize:  len(content),
	}
}

// webViewHTML is the navigation fallback: a page embedding the base64 export
// in a textarea the wrapper (or the user) can copy out. The payload is
// base64, so no HTML escaping is needed inside the textarea.
func webViewHTML(filename string, content []byte) string {
	encoded := base64.StdEncoding.EncodeToString(content)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Export: %s</title></head>
<body>
<h3>Export ready: %s</h3>
<p>Copy the content below into the app to import this export.</p>
<textarea readonly rows="20" cols="80" id="export-data">%s</textarea>
</body>
</html>
`, filename, filename, encoded)
}
