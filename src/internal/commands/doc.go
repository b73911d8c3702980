// Package commands implements the CLI subcommands of otp-netsetting.
//
// Each subcommand is a Runner with its own flag set. The main entrypoint
// dispatches to the runner matching the first positional argument.
package commands
