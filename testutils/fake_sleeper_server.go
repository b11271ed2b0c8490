package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// TestLeagueID is the one league the fake sleeper server knows about.
const TestLeagueID = "924039165950484480"

type FakeSleeperServer struct {
	s *httptest.Server

	// PlayerRequests counts hits on the player directory endpoint so
	// tests can verify the read-through cache.
	PlayerRequests atomic.Int32
}

func NewFakeSleeperServer() *FakeSleeperServer {
	f := &FakeSleeperServer{}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", func(w http.ResponseWriter, r *http.Request) {
			f.PlayerRequests.Add(1)
			serveFile(w, sleeperdata, "sleeperdata/players.json")
		})

		r.Get("/user/{username}", sleeperUserHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueFileHandler("users.json", "[]"))
			r.Get("/rosters", leagueFileHandler("rosters.json", "[]"))
			r.Get("/traded_picks", leagueFileHandler("traded_picks.json", "[]"))
			r.Get("/drafts", leagueFileHandler("drafts.json", "[]"))
		})
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == TestLeagueID {
		serveFile(w, sleeperdata, "sleeperdata/league.json")
	} else {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("null"))
	}
}

func leagueFileHandler(name, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") == TestLeagueID {
			serveFile(w, sleeperdata, fmt.Sprintf("sleeperdata/%s", name))
		} else {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(fallback))
		}
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "dynasty_dan" {
		serveFile(w, sleeperdata, "sleeperdata/user.json")
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the response body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func serveFile(w http.ResponseWriter, fs embed.FS, name string) {
	b, err := fs.ReadFile(name)
	if err != nil {
		log.Printf("error reading %s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
