// Package utils holds small helpers shared by the gateway and the client:
// JSON responses, the resty-based HTTP client and UUIDv7 trace ids.
package utils
