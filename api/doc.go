// Package api exposes the hand evaluator over HTTP.
//
// # Routes
//
//	GET /ping              health check
//	GET /v1/hands/:codes   rank every order of a hand, e.g. /v1/hands/qab
//
// Every response uses the same envelope: {"code": <status>, "data": ..., "msg": ...}.
// Malformed hands answer 400 with the parse error in msg.
//
// # Server
//
// NewServerWithOptions builds a Server; Start serves on a listener in the
// background and Shutdown stops it.
package api
