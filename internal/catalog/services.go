package catalog

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names, as dialed by the client and logged by the server.
const (
	UserServiceGetUser             = "/catalog.UserService/GetUser"
	UserServiceAddFavoriteMovie    = "/catalog.UserService/AddFavoriteMovie"
	UserServiceDeleteFavoriteMovie = "/catalog.UserService/DeleteFavoriteMovie"

	MovieServiceList                 = "/catalog.MovieService/List"
	MovieServiceGetMovieWithComments = "/catalog.MovieService/GetMovieWithComments"
)

// UserServiceServer is the server-side contract for user records and
// favorite membership. GetUser fails with codes.NotFound when no record
// exists for the email.
type UserServiceServer interface {
	GetUser(ctx context.Context, req *GetUserRequest) (*User, error)
	AddFavoriteMovie(ctx context.Context, req *AddFavoriteMovieRequest) (*AddFavoriteMovieResponse, error)
	DeleteFavoriteMovie(ctx context.Context, req *DeleteFavoriteMovieRequest) (*DeleteFavoriteMovieResponse, error)
}

// MovieServiceServer is the server-side contract for the movie collection.
type MovieServiceServer interface {
	List(ctx context.Context, req *ListMoviesRequest) (*ListMoviesResponse, error)
	GetMovieWithComments(ctx context.Context, req *GetMovieWithCommentsRequest) (*GetMovieWithCommentsResponse, error)
}

func getUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UserServiceGetUser}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func addFavoriteMovieHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddFavoriteMovieRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).AddFavoriteMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UserServiceAddFavoriteMovie}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).AddFavoriteMovie(ctx, req.(*AddFavoriteMovieRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteFavoriteMovieHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteFavoriteMovieRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).DeleteFavoriteMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UserServiceDeleteFavoriteMovie}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).DeleteFavoriteMovie(ctx, req.(*DeleteFavoriteMovieRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listMoviesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMoviesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MovieServiceList}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).List(ctx, req.(*ListMoviesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getMovieWithCommentsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMovieWithCommentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).GetMovieWithComments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MovieServiceGetMovieWithComments}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).GetMovieWithComments(ctx, req.(*GetMovieWithCommentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserServiceDesc registers a UserServiceServer with a grpc.Server.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUser", Handler: getUserHandler},
		{MethodName: "AddFavoriteMovie", Handler: addFavoriteMovieHandler},
		{MethodName: "DeleteFavoriteMovie", Handler: deleteFavoriteMovieHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog",
}

// MovieServiceDesc registers a MovieServiceServer with a grpc.Server.
var MovieServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.MovieService",
	HandlerType: (*MovieServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: listMoviesHandler},
		{MethodName: "GetMovieWithComments", Handler: getMovieWithCommentsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog",
}
