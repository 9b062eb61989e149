// Package conversion generates MCP input schemas from catalog function
// parameter lists and translates those schemas into dynamic Go struct types
// so that call arguments can be validated and decoded in a type-safe manner
// at runtime.
package conversion
