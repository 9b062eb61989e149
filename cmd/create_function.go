package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
)

// CreateFunctionCmd registers a function with the configured catalog and
// schema from a declarative definition.  The routine body can be supplied
// inline, from a local path or URL, or piped via stdin.
type CreateFunctionCmd struct {
	Name       string   `short:"n" long:"name" description:"Function name" required:"yes"`
	Inline     string   `short:"d" long:"definition" description:"Inline routine body"`
	File       string   `long:"definition-file" description:"Path or URL with the routine body (use - for stdin)"`
	Comment    string   `long:"comment" description:"Free-text description of the function"`
	DataType   string   `long:"data-type" description:"Return type of the function" default:"STRING"`
	Parameters []string `short:"p" long:"param" description:"Input parameter as name:TYPE, repeatable"`
	JSON       bool     `long:"json" description:"Print result as JSON"`
}

func (c *CreateFunctionCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-d/--definition and --definition-file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()

	definition, err := c.routineDefinition(ctx)
	if err != nil {
		return err
	}

	params := make([]interface{}, 0, len(c.Parameters))
	for _, raw := range c.Parameters {
		name, typeName, ok := strings.Cut(raw, ":")
		if !ok || name == "" || typeName == "" {
			return fmt.Errorf("invalid parameter %q, expected name:TYPE", raw)
		}
		params = append(params, map[string]interface{}{"name": name, "type_name": typeName})
	}

	args := map[string]interface{}{
		"name":               c.Name,
		"routine_definition": definition,
	}
	if c.Comment != "" {
		args["comment"] = c.Comment
	}
	if c.DataType != "" {
		args["data_type"] = c.DataType
	}
	if len(params) > 0 {
		args["parameters"] = params
	}

	result, callErr := svc.CallTool(ctx, "uc_create_function", args, nil)
	if callErr != nil {
		return fmt.Errorf("%v", callErr.Message)
	}
	return printResult(result, c.JSON)
}

func (c *CreateFunctionCmd) routineDefinition(ctx context.Context) (string, error) {
	switch {
	case c.Inline != "":
		return c.Inline, nil
	case c.File == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case c.File != "":
		data, err := afs.New().DownloadWithURL(ctx, c.File)
		if err != nil {
			return "", fmt.Errorf("read definition %q: %w", c.File, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("a routine definition is required (-d or --definition-file)")
}
