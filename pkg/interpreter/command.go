package interpreter

// Command is a named capability the interpreter can dispatch to.
type Command interface {
	GetName() string
	// GetAlias returns a shorter name, or "" when the command has none.
	GetAlias() string
	GetDescription() string

	Execute(args []string) string
}

// BaseCommand provides the metadata half of Command. Embed it and implement
// Execute.
type BaseCommand struct {
	Name        string
	Alias       string
	Description string
}

func (c *BaseCommand) GetName() string        { return c.Name }
func (c *BaseCommand) GetAlias() string       { return c.Alias }
func (c *BaseCommand) GetDescription() string { return c.Description }

// Func adapts a plain function into a Command.
type Func struct {
	BaseCommand
	Fn func(args []string) string
}

// NewFunc creates a Command named name that runs fn.
func NewFunc(name, alias string, fn func(args []string) string) *Func {
	return &Func{
		BaseCommand: BaseCommand{Name: name, Alias: alias},
		Fn:          fn,
	}
}

func (f *Func) Execute(args []string) string {
	return f.Fn(args)
}
