package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultAddr            = ":80"
	defaultShutdownTimeout = 5 * time.Second
)

// Server runs an http.Server in the background and reports its exit on Notify.
type Server struct {
	name            string
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
}

func New(name string, handler http.Handler, opts ...Option) *Server {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		Addr:         defaultAddr,
	}

	s := &Server{
		name:            name,
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	log.WithFields(log.Fields{
		"server": s.name,
		"addr":   s.server.Addr,
	}).Info("HTTP server listening")

	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.notify <- err
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.WithField("server", s.name).Info("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}
