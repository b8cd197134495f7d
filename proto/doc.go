// Package proto holds the wire definitions for the gRPC surface. Generated
// code lands under gen/proto and is not committed.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/Ajauregui69/livo-backend --go-grpc_out=.. --go-grpc_opt=module=github.com/Ajauregui69/livo-backend documents/v1/documents.proto reviews/v1/reviews.proto scores/v1/scores.proto
