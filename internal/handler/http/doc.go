// Package http implements the HTTP+JSON transport of go-linkup.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression, per-request deadlines and
// bearer token authentication are handled here before requests reach the
// service layer.
package http
