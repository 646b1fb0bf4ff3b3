package storeserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vmunix/vmanager/internal/catalog"
)

// Server exposes a Store over the REST routes the CLI consumes.
type Server struct {
	store *Store
	log   *slog.Logger
}

// New creates a new store server.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, log: logger}
}

// RegisterRoutes registers the store routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /authors", s.listAuthors)
	mux.HandleFunc("GET /authors/{id}", s.getAuthor)
	mux.HandleFunc("PUT /authors/{id}", s.putAuthor)
	mux.HandleFunc("GET /categories", s.listCategories)
	mux.HandleFunc("GET /healthz", s.healthz)
}

// Handler returns a mux with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.Atoi(idStr)
}

func (s *Server) listAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := s.store.ListAuthors(r.Context())
	if err != nil {
		s.log.Error("list authors", "error", err)
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid author id")
		return
	}

	author, err := s.store.GetAuthor(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "author not found")
		return
	}
	if err != nil {
		s.log.Error("get author", "author_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) putAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid author id")
		return
	}

	var author catalog.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := validateAuthor(author, id); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := s.store.PutAuthor(r.Context(), author); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "author not found")
			return
		}
		s.log.Error("put author", "author_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	s.log.Debug("author saved", "author_id", id, "videos", len(author.Videos))
	if author.Videos == nil {
		author.Videos = []catalog.Video{}
	}
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.log.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var nonBlank = regexp.MustCompile(`\S`)

// validateAuthor checks a PUT body against the author id in the path.
// Videos are stored as sent; their contents are not checked.
func validateAuthor(a catalog.Author, id int) error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required, validation.In(id).Error("must match the author id in the path")),
		validation.Field(&a.Name, validation.Required, validation.Match(nonBlank).Error("cannot be blank")),
	)
}
