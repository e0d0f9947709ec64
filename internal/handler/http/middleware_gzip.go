package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. Snapshot ciphertext is base64 inside JSON, so
// responses shrink noticeably.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledReadCloser{Reader: zr, release: func() {
				zr.Close()
				gzipReaderPool.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipWriterPool.Put(zw)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)
	})
}

type pooledReadCloser struct {
	io.Reader
	release func()
	closed  bool
}

func (p *pooledReadCloser) Close() error {
	if !p.closed {
		p.closed = true
		p.release()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(data)
}
