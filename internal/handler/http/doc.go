// Package http is the transport surface of the sync protocol: the push and
// pull endpoints, the version probe, and the middleware in front of them
// (bearer-token auth, trace ids, access logging, gzip). Handlers decode the
// wire envelopes and delegate straight to the resolver services; protocol
// semantics live there, not here.
package http
