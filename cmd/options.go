package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.  Every connection flag mirrors a config file
// field and, when set, overrides it.
type Options struct {
	Config       string `short:"f" long:"config" description:"Gateway configuration YAML path or URL"`
	Endpoint     string `short:"u" long:"endpoint" description:"Unity Catalog server base URL (overrides config)"`
	Catalog      string `short:"c" long:"catalog" description:"Catalog to serve functions from (overrides config)"`
	Schema       string `short:"s" long:"schema" description:"Schema within the catalog (overrides config)"`
	Token        string `short:"t" long:"token" description:"Bearer token for catalog API requests (overrides config)"`
	Verbosity    string `short:"v" long:"verbosity" description:"Log verbosity: debug, info, warn, error or critical"`
	LogDirectory string `short:"l" long:"log-directory" description:"Directory receiving gateway log files"`

	Serve          *ServeCmd          `command:"serve"           description:"Start MCP server exposing the catalog functions as tools"`
	ListTools      *ListToolsCmd      `command:"list-tools"      description:"List all advertised tools"`
	Tool           *ToolCmd           `command:"tool"            description:"Show detailed info about one tool"`
	Call           *CallCmd           `command:"call-tool"       description:"Call a tool with JSON arguments"`
	CreateFunction *CreateFunctionCmd `command:"create-function" description:"Register a function with the catalog"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "call-tool":
		o.Call = &CallCmd{}
	case "create-function":
		o.CreateFunction = &CreateFunctionCmd{}
	}
}

func (o *Options) overrides() Overrides {
	return Overrides{
		Endpoint:     o.Endpoint,
		Catalog:      o.Catalog,
		Schema:       o.Schema,
		Token:        o.Token,
		Verbosity:    o.Verbosity,
		LogDirectory: o.LogDirectory,
	}
}
