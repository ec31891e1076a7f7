package httpserver

import "net/http"

// Server /api/* 交给 Handler，其余交给静态资源
type Server struct {
	api *Handler
	mux *http.ServeMux
}

func NewServer(api *Handler, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	RegisterStaticRoutes(mux, webDir)
	return &Server{api: api, mux: mux}
}

func (s *Server) Handler() *Handler { return s.api }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
