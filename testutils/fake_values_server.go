package testutils

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed valuesdata
var valuesdata embed.FS

type FakeValuesServer struct {
	s *httptest.Server

	// Requests counts hits so tests can verify the per-parameter cache.
	Requests atomic.Int32
}

func NewFakeValuesServer() *FakeValuesServer {
	f := &FakeValuesServer{}

	r := chi.NewRouter()
	r.Get("/values/current", func(w http.ResponseWriter, r *http.Request) {
		f.Requests.Add(1)
		serveFile(w, valuesdata, "valuesdata/values.json")
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeValuesServer) Close() {
	f.s.Close()
}

func (f *FakeValuesServer) URL() string {
	return f.s.URL
}
