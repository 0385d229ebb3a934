package router

import "net/http"

// trackedWriter records the first status sent and the body size so the
// error and panic paths never write a second header.
type trackedWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func track(w http.ResponseWriter) *trackedWriter {
	if tw, ok := w.(*trackedWriter); ok {
		return tw
	}
	return &trackedWriter{ResponseWriter: w}
}

func (tw *trackedWriter) WriteHeader(status int) {
	if tw.status != 0 {
		return
	}
	tw.status = status
	tw.ResponseWriter.WriteHeader(status)
}

func (tw *trackedWriter) Write(b []byte) (int, error) {
	if tw.status == 0 {
		tw.WriteHeader(http.StatusOK)
	}
	n, err := tw.ResponseWriter.Write(b)
	tw.bytes += n
	return n, err
}

// Flush is a no-op when the underlying writer cannot flush.
func (tw *trackedWriter) Flush() {
	_ = http.NewResponseController(tw.ResponseWriter).Flush()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (tw *trackedWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}

// sentStatus reports the status already committed on w, if any.
func sentStatus(w http.ResponseWriter) (int, bool) {
	tw, ok := w.(*trackedWriter)
	if !ok || tw.status == 0 {
		return 0, false
	}
	return tw.status, true
}
