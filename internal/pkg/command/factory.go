package command

import (
	"fmt"
	"slices"

	"github.com/samber/do/v2"
)

// Factory is the registry of commands of one facade, keyed by command ID.
// Commands are stored as named services of a samber/do injector.
//
// Example:
//
//	factory, err := command.NewFactory("courses", createCourse, deleteCourse, findCourse)
//	cmd, err := factory.Command("course.delete")
type Factory struct {
	name     string
	injector do.Injector
	ids      []string
}

// NewFactory registers commands under their IDs. Duplicate IDs are rejected.
func NewFactory(name string, commands ...RootCommand) (*Factory, error) {
	f := &Factory{
		name:     name,
		injector: do.New(),
		ids:      make([]string, 0, len(commands)),
	}

	for _, cmd := range commands {
		if err := f.register(cmd); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Name returns the factory (facade) name.
func (f *Factory) Name() string {
	return f.name
}

// Command returns the command registered under id.
func (f *Factory) Command(id string) (RootCommand, error) {
	if !slices.Contains(f.ids, id) {
		return nil, fmt.Errorf("%w: %q in %s", ErrCommandIsNotRegistered, id, f.name)
	}

	cmd, err := do.InvokeNamed[RootCommand](f.injector, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s: %w", ErrCommandIsNotRegistered, id, f.name, err)
	}
	return cmd, nil
}

// IDs returns the registered command IDs in registration order.
func (f *Factory) IDs() []string {
	return slices.Clone(f.ids)
}

func (f *Factory) register(cmd RootCommand) error {
	id := cmd.ID()
	if slices.Contains(f.ids, id) {
		return fmt.Errorf("%w: %q in %s", ErrCommandIsDuplicated, id, f.name)
	}

	do.ProvideNamedValue[RootCommand](f.injector, id, cmd)
	f.ids = append(f.ids, id)
	return nil
}
