package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// CallCmd calls an advertised tool from the CLI.  Arguments can be supplied
// either inline via -i/--input or loaded from a JSON file via --file.
type CallCmd struct {
	Name   string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name" required:"yes"`
	Inline string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File   string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	JSON   bool   `long:"json" description:"Print result as JSON"`
}

func (c *CallCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	args, err := c.arguments()
	if err != nil {
		return err
	}

	result, callErr := svc.CallTool(context.Background(), c.Name, args, nil)
	if callErr != nil {
		return fmt.Errorf("%v", callErr.Message)
	}
	return printResult(result, c.JSON)
}

func (c *CallCmd) arguments() (map[string]interface{}, error) {
	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}

// printResult writes the tool result content to stdout.  An error result
// becomes a non-zero exit via the returned error.
func printResult(result *mcpschema.CallToolResult, asJSON bool) error {
	if result == nil {
		return nil
	}
	if asJSON {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
	} else {
		for _, elem := range result.Content {
			fmt.Println(elem.Text)
		}
	}
	if result.IsError != nil && *result.IsError {
		return fmt.Errorf("tool call failed")
	}
	return nil
}
