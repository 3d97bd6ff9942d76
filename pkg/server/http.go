package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wordhive/wordhive/pkg/match"
)

// router builds the Protocol B handler. Unknown paths get chi's default
// 404; a panic inside a handler is turned into a 500 for that caller only.
func (f *Frontend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/find_words", f.handleFindWords)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// handleFindWords serves GET /find_words?letters=a,b,c with a JSON array of
// matched words. An empty or unusable letters parameter yields an empty
// array, not an error: no matches is a normal answer.
func (f *Frontend) handleFindWords(w http.ResponseWriter, r *http.Request) {
	lettersParam := r.URL.Query().Get("letters")
	f.logger.Debugf("http find_words: letters=%q", lettersParam)

	words := f.lookup(match.AlphabetFromString(lettersParam))

	data, err := json.Marshal(words)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Error: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
