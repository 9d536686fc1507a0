package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Options struct {
	CORSOrigins []string
	// base of the ordering links printed into table QR codes
	PublicBaseURL string
}

type Server struct {
	httpServer *http.Server
	grpcAddr   string
	opts       Options
	conn       *grpc.ClientConn
}

func NewServer(httpAddr, grpcAddr string, opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              httpAddr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		grpcAddr: grpcAddr,
		opts:     opts,
	}
}

// Start dials the gRPC server and serves the JSON gateway until Stop.
func (s *Server) Start(ctx context.Context) error {
	conn, err := grpc.NewClient(s.grpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to dial gRPC server: %w", err)
	}
	s.conn = conn

	handler, err := NewHandler(conn, s.opts)
	if err != nil {
		return fmt.Errorf("failed to register gateway: %w", err)
	}
	s.httpServer.Handler = handler

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP gateway: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.conn != nil {
		err = errors.Join(err, s.conn.Close())
	}
	return err
}

// NewHandler builds the HTTP/JSON surface over a gRPC connection to the
// table session service.
func NewHandler(conn grpc.ClientConnInterface, opts Options) (http.Handler, error) {
	mux, err := newMux(conn, opts)
	if err != nil {
		return nil, err
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return logRequests(c.Handler(mux)), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http")
	})
}
