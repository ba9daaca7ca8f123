package api

import (
	"context"
	"fmt"

	"filmoteka/internal/catalog"
	"filmoteka/internal/client/models"
	"filmoteka/internal/common"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient implements Client over a gRPC connection speaking the catalog
// JSON codec.
type GRPCClient struct {
	conn   *grpc.ClientConn
	apiKey string
	tokens TokenSource
}

// withCredentials returns ctx with outgoing metadata carrying the API key
// and, when token is non-empty, the bearer authorization header. An absent
// token never fails the call; the header is simply omitted.
func withCredentials(ctx context.Context, token, apiKey string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.APIKeyHeaderName, apiKey)
	md.Delete(common.AuthorizationHeaderName)
	if token != "" {
		md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) credentialsInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}

	ctx = withCredentials(ctx, token, c.apiKey)

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL and returns a ready Client. The token
// source is read per request; apiKey is attached to every request.
func NewGRPCClient(endpointURL, apiKey string, tokens TokenSource) (*GRPCClient, error) {
	c := &GRPCClient{apiKey: apiKey, tokens: tokens}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.credentialsInterceptor),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(catalog.CodecName)),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) GetUser(ctx context.Context, email string) (*models.User, error) {
	req := &catalog.GetUserRequest{Email: email}
	resp := &catalog.User{}

	if err := c.conn.Invoke(ctx, catalog.UserServiceGetUser, req, resp); err != nil {
		return nil, mapError(err)
	}

	return userFromWire(resp), nil
}

func (c *GRPCClient) AddFavorite(ctx context.Context, email, movieID string) error {
	req := &catalog.AddFavoriteMovieRequest{Email: email, MovieID: movieID}
	resp := &catalog.AddFavoriteMovieResponse{}

	if err := c.conn.Invoke(ctx, catalog.UserServiceAddFavoriteMovie, req, resp); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *GRPCClient) RemoveFavorite(ctx context.Context, email, movieID string) error {
	req := &catalog.DeleteFavoriteMovieRequest{Email: email, MovieID: movieID}
	resp := &catalog.DeleteFavoriteMovieResponse{}

	if err := c.conn.Invoke(ctx, catalog.UserServiceDeleteFavoriteMovie, req, resp); err != nil {
		return mapError(err)
	}
	return nil
}

// ListMovies fetches one collection page. The cursor is forwarded verbatim;
// the returned next-cursor is opaque and must not be interpreted beyond
// comparing to "".
func (c *GRPCClient) ListMovies(ctx context.Context, cursor string) ([]models.Movie, string, error) {
	req := &catalog.ListMoviesRequest{Cursor: cursor}
	resp := &catalog.ListMoviesResponse{}

	if err := c.conn.Invoke(ctx, catalog.MovieServiceList, req, resp); err != nil {
		return nil, "", mapError(err)
	}

	movies := make([]models.Movie, 0, len(resp.Data))
	for _, m := range resp.Data {
		movies = append(movies, movieFromWire(m))
	}
	return movies, resp.NextCursor, nil
}

func (c *GRPCClient) GetMovieWithComments(ctx context.Context, id string) (*models.MovieWithComments, error) {
	req := &catalog.GetMovieWithCommentsRequest{ID: id}
	resp := &catalog.GetMovieWithCommentsResponse{}

	if err := c.conn.Invoke(ctx, catalog.MovieServiceGetMovieWithComments, req, resp); err != nil {
		return nil, mapError(err)
	}

	if len(resp.Data) == 0 {
		return nil, common.ErrNotFound
	}

	d := resp.Data[0]
	result := &models.MovieWithComments{Movie: movieFromWire(&d.Movie)}
	for _, cm := range d.Comments {
		result.Comments = append(result.Comments, models.Comment{
			ID:   cm.ID,
			Name: cm.Name,
			Text: cm.Text,
			Date: cm.Date,
		})
	}
	return result, nil
}

func userFromWire(u *catalog.User) *models.User {
	return &models.User{
		Email:            u.Email,
		Name:             u.Name,
		FavoriteMovieIDs: append([]string(nil), u.FavoriteMovieIDs...),
	}
}

func movieFromWire(m *catalog.Movie) models.Movie {
	return models.Movie{
		ID:       m.ID,
		Title:    m.Title,
		Plot:     m.Plot,
		Poster:   m.Poster,
		Runtime:  m.Runtime,
		Released: m.Released,
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.NotFound:
		return common.ErrNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
