// Package driving defines the interfaces through which the outside
// world drives the core: the CLI and the MCP server both consume
// these, never the services directly.
package driving
