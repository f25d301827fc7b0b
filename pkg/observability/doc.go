/*
Package observability provides in-process metrics for a ferris session.

Counters live in a private prometheus registry, so several sessions (or tests) never
collide on the global default registry. Nothing is exposed over the network; the CLI
reads a Snapshot when the session ends and logs it.
*/
package observability
