// Package tools exposes the client-records API as MCP tools so assistants
// and other MCP clients can manage records without the TUI.
//
// Tools:
//
//   - client_list: list records, optionally filtered by a search term
//   - client_get: fetch one record by id
//   - client_create: create a record from name, email, job, rate and status
//   - client_update: replace the writable fields of a record
//   - client_toggle: flip a record between Active and Inactive
//   - client_delete: delete a record; requires confirm=true
//
// Input goes through the same clients.Form validation the TUI form uses, so
// a record that cannot be typed into the form cannot be created here either.
// Results are JSON text; failures are returned as tool errors, never as Go
// errors, so the MCP session stays up.
//
// Example call:
//
//	{
//	  "method": "tools/call",
//	  "params": {
//	    "name": "client_list",
//	    "arguments": {"search": "ann"}
//	  }
//	}
//
// Response:
//
//	{
//	  "clients": [
//	    {"id": 1, "name": "Ann", "email": "a@x.com", "job": "Dev", "rate": 40, "isactive": true}
//	  ],
//	  "total": 1
//	}
package tools
