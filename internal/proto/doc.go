// Package proto holds the gRPC bindings generated from
// proto/albumkeeper.proto. Run go generate here after changing the
// contract; the generated files are not committed.
package proto

//go:generate protoc --proto_path=../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative albumkeeper.proto
