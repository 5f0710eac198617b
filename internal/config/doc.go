// Package config assembles the server, client and migrator configuration
// from environment variables, command-line flags, and an optional JSON
// file, merged in that order with later non-zero fields winning.
//
// [GetStructuredConfig] serves the server and migrator processes;
// [GetClientConfig] narrows the same structure down to what the journal
// client needs (adapter endpoint, local storage paths, sync tuning,
// device identity).
package config
