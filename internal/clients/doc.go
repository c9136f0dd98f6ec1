// Package clients holds the client record schema shared by the API client,
// the TUI and the MCP tools, together with the pure operations the
// application controller applies to its cached collection: search filtering,
// insert, replace-by-id and remove-by-id.
//
// The form projection (Form) keeps the status as the strings "Active" and
// "Inactive"; Form.Payload converts it to the boolean the backend stores.
package clients
