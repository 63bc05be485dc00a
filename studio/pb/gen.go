// Package pb holds the generated ZMK Studio RPC messages.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative studio.proto
