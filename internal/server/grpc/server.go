// Package grpc exposes the catalog services over gRPC: server lifecycle,
// request handlers, and the API-key and logging interceptors.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"filmoteka/internal/catalog"
	"filmoteka/internal/logging"
	"filmoteka/internal/server/models"
)

// UserCatalog is the slice of the user service the handlers need.
type UserCatalog interface {
	GetUser(ctx context.Context, email string) (*models.User, error)
	AddFavorite(ctx context.Context, email string, movieID string) error
	RemoveFavorite(ctx context.Context, email string, movieID string) error
}

// MovieCatalog is the slice of the movie service the handlers need.
type MovieCatalog interface {
	List(ctx context.Context, cursor string) ([]*models.Movie, string, error)
	GetWithComments(ctx context.Context, id string) (*models.MovieWithComments, error)
}

type GRPCServer struct {
	address string
	apiKey  string
	users   UserCatalog
	movies  MovieCatalog
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserCatalog, ms MovieCatalog, apiKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		movies:  ms,
		apiKey:  apiKey,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.apiKeyInterceptor, s.loggingInterceptor))

	// registers services
	srv.RegisterService(&catalog.UserServiceDesc, s)
	srv.RegisterService(&catalog.MovieServiceDesc, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
