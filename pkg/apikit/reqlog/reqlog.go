package reqlog

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// maxMemory bounds the in-memory part of a parsed multipart body and the
// size of a body read for logging.
const maxMemory = 32 << 20

// Profile decides which requests are logged.
type Profile struct {
	enabled bool
	methods []string
}

// NewProfile creates a profile from cfg.
func NewProfile(cfg Config) *Profile {
	methods := make([]string, len(cfg.ShouldLog))
	for i, m := range cfg.ShouldLog {
		methods[i] = strings.ToLower(m)
	}
	return &Profile{enabled: cfg.Enabled, methods: methods}
}

// Enabled reports whether request logging is on.
func (p *Profile) Enabled() bool {
	return p.enabled
}

// ShouldLogRequest reports whether r's method is one of the logged
// methods.
func (p *Profile) ShouldLogRequest(r *http.Request) bool {
	return slices.Contains(p.methods, strings.ToLower(r.Method))
}

// Writer formats and logs requests.
type Writer struct {
	except   []string
	logFiles bool
	logger   *log.Logger

	// maxBody is the largest body whose fields are logged.
	maxBody int64
}

// NewWriter creates a writer. A nil logger means the charmbracelet
// default logger.
func NewWriter(cfg Config, logger *log.Logger) *Writer {
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{except: cfg.Except, logFiles: cfg.LogFiles, logger: logger, maxBody: maxMemory}
}

// LogRequest logs one line for r. The body is buffered and restored so
// handlers can still read it.
func (w *Writer) LogRequest(r *http.Request) {
	w.logger.Info(w.Format(r), "request_id", r.Header.Get(HeaderRequestID))
}

// Format renders the log line for r:
//
//	<ip> <METHOD> <path> - <user agent> - Body: <json>[ - Files: a, b]
func (w *Writer) Format(r *http.Request) string {
	in := readInput(r, w.maxBody)
	for _, key := range w.except {
		delete(in.fields, key)
	}

	body, err := json.Marshal(in.fields)
	if err != nil {
		body = []byte("{}")
	}

	var b strings.Builder
	b.WriteString(clientIP(r))
	b.WriteString(" ")
	b.WriteString(strings.ToUpper(r.Method))
	b.WriteString(" ")
	b.WriteString(r.URL.Path)
	b.WriteString(" - ")
	b.WriteString(r.UserAgent())
	b.WriteString(" - Body: ")
	b.Write(body)
	if w.logFiles {
		b.WriteString(" - Files: ")
		b.WriteString(strings.Join(in.files, ", "))
	}
	return b.String()
}

// Middleware stamps every request with an X-Request-ID, generating one
// when absent, and logs the requests p selects.
func Middleware(p *Profile, w *Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(HeaderRequestID, id)
			}
			rw.Header().Set(HeaderRequestID, id)

			if p.Enabled() && p.ShouldLogRequest(r) {
				w.LogRequest(r)
			}
			next.ServeHTTP(rw, r)
		})
	}
}

type input struct {
	fields map[string]any
	files  []string
}

// readInput merges query parameters with the JSON, urlencoded or
// multipart body. Body values win over query values. At most maxBody
// bytes are buffered; a larger body is left unparsed. Either way r.Body
// still yields the whole body afterwards.
func readInput(r *http.Request, maxBody int64) input {
	in := input{fields: map[string]any{}}
	mergeValues(in.fields, r.URL.Query())

	if r.Body == nil || r.Body == http.NoBody {
		return in
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(data), r.Body), Closer: r.Body}
	if err != nil || len(data) == 0 || int64(len(data)) > maxBody {
		return in
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var body map[string]any
		if json.Unmarshal(data, &body) == nil {
			for k, v := range body {
				in.fields[k] = v
			}
		}
	case "application/x-www-form-urlencoded", "multipart/form-data":
		clone := r.Clone(r.Context())
		clone.Body = io.NopCloser(bytes.NewReader(data))
		if mediaType == "multipart/form-data" {
			if clone.ParseMultipartForm(maxMemory) != nil {
				return in
			}
			defer clone.MultipartForm.RemoveAll()
			for _, headers := range clone.MultipartForm.File {
				for _, h := range headers {
					in.files = append(in.files, h.Filename)
				}
			}
			slices.Sort(in.files)
		} else if clone.ParseForm() != nil {
			return in
		}
		mergeValues(in.fields, clone.PostForm)
	}
	return in
}

type readCloser struct {
	io.Reader
	io.Closer
}

func mergeValues(dst map[string]any, values map[string][]string) {
	for k, v := range values {
		if len(v) == 1 {
			dst[k] = v[0]
		} else {
			dst[k] = v
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
