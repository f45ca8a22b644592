package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

func printJSON(c *cli.Context, val interface{}) error {
	encoded, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(encoded))
	return err
}

func printLine(c *cli.Context, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(c.App.Writer, format+"\n", args...)
	return err
}
