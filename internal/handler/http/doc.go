// Package http implements the auth gateway's HTTP transport.
//
// It exposes the register and login endpoints consumed by the house-builder
// page, the static model files shown in its 3D preview, and the middleware
// chain (panic recovery, request tracing, access logging, gzip) in front of
// them. Handlers never keep a session: every response is self-contained.
package http
