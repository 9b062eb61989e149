// Package mcp wires the Unity Catalog function client to the MCP protocol
// implementation.  Its central Service type loads configuration, holds the
// built-in administrative tools, enumerates catalog functions into dynamic
// tools and exposes the merged set over an MCP server.
package mcp
