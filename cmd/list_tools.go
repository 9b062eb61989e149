package cmd

import (
	"context"
	"fmt"
	"sort"
)

// ListToolsCmd prints every advertised tool: built-ins plus the catalog
// functions visible at this very moment.
type ListToolsCmd struct{}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	tools, err := svc.ListTools(context.Background())
	if err != nil {
		return err
	}
	// Sorting for deterministic output (helpful for tests & scripting).
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	for _, t := range tools {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		fmt.Printf("%s\t%s\n", t.Name, desc)
	}
	return nil
}
