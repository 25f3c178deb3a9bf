package cli

import (
	"context"
	"os"
)

// Execute runs the tabgrid CLI with the given context and returns an error
// if any command fails. Logging goes to stderr at info level until the
// configuration or --verbose says otherwise.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
