// Package catalog defines the wire contract between the filmoteka client
// and the catalog service: the typed request/response messages, the gRPC
// service descriptors, and the JSON codec both sides speak.
//
// The upstream schema is owned by the service; this package maintains the
// contract by hand as plain Go types with a JSON codec instead of generated
// protobuf bindings. The service descriptors mirror what protoc-gen-go-grpc
// would emit, so the server registers them like any generated service and
// the client invokes the same full method names.
package catalog
