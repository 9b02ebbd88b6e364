package server

import (
	"bytes"
	"net/http"
)

// Audit entries keep a copy of the response for traceability, but label
// and rate payloads embed full provider JSON. The copy is capped; the
// client response is never touched.
const maxAuditBodyBytes = 16 << 10

// auditRecorder captures the status code and a bounded copy of the
// response body while passing everything through to the client.
type auditRecorder struct {
	http.ResponseWriter
	status    int
	body      bytes.Buffer
	truncated bool
}

func newAuditRecorder(w http.ResponseWriter) *auditRecorder {
	return &auditRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *auditRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *auditRecorder) Write(b []byte) (int, error) {
	if remaining := maxAuditBodyBytes - r.body.Len(); remaining > 0 {
		if len(b) > remaining {
			r.body.Write(b[:remaining])
			r.truncated = true
		} else {
			r.body.Write(b)
		}
	} else if len(b) > 0 {
		r.truncated = true
	}
	return r.ResponseWriter.Write(b)
}

// auditBody marks truncation so readers of the audit log know the
// stored payload is partial.
func (r *auditRecorder) auditBody() string {
	if r.truncated {
		return r.body.String() + "...[truncated]"
	}
	return r.body.String()
}
