package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"filmoteka/internal/catalog"
	"filmoteka/internal/common"
	"filmoteka/internal/server/models"
	"filmoteka/internal/server/repositories/movies"
)

func (s *GRPCServer) GetUser(ctx context.Context, req *catalog.GetUserRequest) (*catalog.User, error) {

	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	user, err := s.users.GetUser(ctx, req.Email)

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return userToWire(user), nil
}

func (s *GRPCServer) AddFavoriteMovie(ctx context.Context, req *catalog.AddFavoriteMovieRequest) (*catalog.AddFavoriteMovieResponse, error) {

	if req.Email == "" || req.MovieID == "" {
		return nil, status.Error(codes.InvalidArgument, "email and movie_id are required")
	}

	if err := s.users.AddFavorite(ctx, req.Email, req.MovieID); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &catalog.AddFavoriteMovieResponse{}, nil
}

func (s *GRPCServer) DeleteFavoriteMovie(ctx context.Context, req *catalog.DeleteFavoriteMovieRequest) (*catalog.DeleteFavoriteMovieResponse, error) {

	if req.Email == "" || req.MovieID == "" {
		return nil, status.Error(codes.InvalidArgument, "email and movie_id are required")
	}

	if err := s.users.RemoveFavorite(ctx, req.Email, req.MovieID); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &catalog.DeleteFavoriteMovieResponse{}, nil
}

func (s *GRPCServer) List(ctx context.Context, req *catalog.ListMoviesRequest) (*catalog.ListMoviesResponse, error) {

	page, next, err := s.movies.List(ctx, req.Cursor)

	if err != nil {
		if errors.Is(err, movies.ErrInvalidCursor) {
			return nil, status.Error(codes.InvalidArgument, "invalid cursor")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &catalog.ListMoviesResponse{NextCursor: next, Data: make([]*catalog.Movie, 0, len(page))}
	for _, m := range page {
		resp.Data = append(resp.Data, movieToWire(m))
	}

	return resp, nil
}

func (s *GRPCServer) GetMovieWithComments(ctx context.Context, req *catalog.GetMovieWithCommentsRequest) (*catalog.GetMovieWithCommentsResponse, error) {

	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	movie, err := s.movies.GetWithComments(ctx, req.ID)

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	detail := &catalog.MovieWithComments{Movie: *movieToWire(&movie.Movie)}
	for _, c := range movie.Comments {
		detail.Comments = append(detail.Comments, &catalog.Comment{
			ID:   c.ID,
			Name: c.Name,
			Text: c.Text,
			Date: c.Date,
		})
	}

	return &catalog.GetMovieWithCommentsResponse{Data: []*catalog.MovieWithComments{detail}}, nil
}

func userToWire(u *models.User) *catalog.User {
	return &catalog.User{
		Email:            u.Email,
		Name:             u.Name,
		FavoriteMovieIDs: u.FavoriteMovieIDs,
	}
}

func movieToWire(m *models.Movie) *catalog.Movie {
	return &catalog.Movie{
		ID:       m.ID,
		Title:    m.Title,
		Plot:     m.Plot,
		Poster:   m.Poster,
		Runtime:  m.Runtime,
		Released: m.Released,
	}
}
