// Package tool bridges fully-qualified catalog function names and the MCP
// tool registry.  It provides the wire-name codec together with the
// session-scoped mapping that keeps every advertised name resolvable at call
// time.
package tool
