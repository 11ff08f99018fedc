// Package server runs the HTTP and gRPC listeners of the service.
//
// [NewServer] creates one server per configured address. RunServer starts
// them all and blocks until SIGINT, SIGTERM or SIGQUIT arrives or one of
// them fails, then shuts every server down within Server.ShutdownTimeout.
package server
