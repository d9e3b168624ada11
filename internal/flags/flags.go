// Package flags is a process-wide registry of named command-line options.
//
// Options are declared up front with String, Int or Bool, which hand back a
// pointer holding the option's default. Parse resolves the pointers from an
// argument list. The parsing itself is done by kong: every Parse call turns
// the registered options into a tagged struct type and lets kong fill it in.
package flags

import (
	"errors"        // errors is used for the sentinel errors and joining registration errors
	"fmt"           // fmt is used to wrap errors and render struct tags
	"io"            // io is used for the help/usage writers
	"os"            // os supplies the default writers and exit func
	"path/filepath" // filepath is used to derive the program name from argv[0]
	"reflect"       // reflect is used to assemble the grammar struct at parse time
	"regexp"        // regexp validates option names
	"strconv"       // strconv quotes tag values
	"strings"       // strings escapes kong variable markers

	"github.com/alecthomas/kong" // kong is the library we use to parse command-line flags
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrDuplicateFlag is reported by Parse when two options share a name.
	ErrDuplicateFlag = errors.New("flag redefined")

	// ErrInvalidName is reported by Parse when an option name cannot be
	// used as a long flag.
	ErrInvalidName = errors.New("invalid flag name")
)

// validName matches names usable as "--name". Underscores are allowed so
// names like "pass_text" keep their spelling on the command line.
var validName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// reserved names are taken by kong itself.
var reserved = map[string]bool{"help": true}

///////////////////////////////////////////////////////////////////////////////
// Flag
///////////////////////////////////////////////////////////////////////////////

// Flag is one registered option.
type Flag struct {
	Name    string // Name is the long flag name, used as --Name on the command line
	Usage   string // Usage is the human-readable description shown in --help
	Default any    // Default is the value the option holds when not set on the command line

	value reflect.Value // value is the storage behind the pointer handed to the caller
}

// NewFlag is an initializer function for Flag. ptr must point at a value of
// the same type as def.
func NewFlag(name, usage string, def, ptr any) *Flag {
	return &Flag{
		Name:    name,
		Usage:   usage,
		Default: def,
		value:   reflect.ValueOf(ptr).Elem(),
	}
}

// Value returns the option's current value.
func (f *Flag) Value() any {
	return f.value.Interface()
}

// tag renders the kong struct tag for the option. Kong interpolates
// "${var}" in default and help text, so literal dollars are doubled.
func (f *Flag) tag() reflect.StructTag {
	return reflect.StructTag(fmt.Sprintf("name:%s default:%s help:%s",
		strconv.Quote(f.Name),
		strconv.Quote(escapeVars(fmt.Sprint(f.Default))),
		strconv.Quote(escapeVars(f.Usage)),
	))
}

func escapeVars(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

func (f *Flag) reset() {
	f.value.Set(reflect.ValueOf(f.Default))
}

///////////////////////////////////////////////////////////////////////////////
// Registry
///////////////////////////////////////////////////////////////////////////////

// Registry holds a set of options and the positional arguments left over
// from the last Parse. A Registry is not safe for concurrent use; options
// are expected to be declared during package initialization and parsed once
// from main.
type Registry struct {
	flags  []*Flag
	byName map[string]*Flag
	errs   []error  // registration problems, reported by Parse
	args   []string // positional arguments from the last Parse

	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

// NewRegistry is an initializer function for Registry. Help output goes to
// os.Stdout and --help exits the process through os.Exit.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Flag),
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
}

// SetOutput sets where kong writes help and usage text.
func (r *Registry) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// SetExitFunc replaces the function kong calls after printing --help.
func (r *Registry) SetExitFunc(exit func(int)) {
	r.exit = exit
}

// String registers a string option and returns a pointer to its value.
func (r *Registry) String(name, def, usage string) *string {
	p := new(string)
	*p = def
	r.define(NewFlag(name, usage, def, p))
	return p
}

// Int registers an int option and returns a pointer to its value.
func (r *Registry) Int(name string, def int, usage string) *int {
	p := new(int)
	*p = def
	r.define(NewFlag(name, usage, def, p))
	return p
}

// Bool registers a bool option and returns a pointer to its value.
func (r *Registry) Bool(name string, def bool, usage string) *bool {
	p := new(bool)
	*p = def
	r.define(NewFlag(name, usage, def, p))
	return p
}

func (r *Registry) define(f *Flag) {
	switch {
	case !validName.MatchString(f.Name):
		r.errs = append(r.errs, fmt.Errorf("%w: %q", ErrInvalidName, f.Name))
	case reserved[f.Name] || r.byName[f.Name] != nil:
		r.errs = append(r.errs, fmt.Errorf("%w: %s", ErrDuplicateFlag, f.Name))
	default:
		r.flags = append(r.flags, f)
		r.byName[f.Name] = f
	}
}

// Lookup returns the current value of the named option.
func (r *Registry) Lookup(name string) (any, bool) {
	f, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return f.Value(), true
}

// Visit calls fn for each registered option in declaration order.
func (r *Registry) Visit(fn func(*Flag)) {
	for _, f := range r.flags {
		fn(f)
	}
}

// Args returns the positional arguments left after the last Parse.
func (r *Registry) Args() []string {
	return r.args
}

// grammar builds a pointer to a fresh struct with one kong-tagged field per
// option, followed by an optional positional slot that collects whatever is
// not a flag.
func (r *Registry) grammar() reflect.Value {
	fields := make([]reflect.StructField, 0, len(r.flags)+1)
	for i, f := range r.flags {
		fields = append(fields, reflect.StructField{
			Name: "Flag" + strconv.Itoa(i),
			Type: f.value.Type(),
			Tag:  f.tag(),
		})
	}
	fields = append(fields, reflect.StructField{
		Name: "Args",
		Type: reflect.TypeOf([]string(nil)),
		Tag:  `arg:"" optional:"" name:"args" help:"Positional arguments."`,
	})
	return reflect.New(reflect.StructOf(fields))
}

// Parse resolves every registered option from argv, where argv[0] is the
// program name. Options not present in argv are reset to their defaults, so
// calling Parse twice with the same argv gives the same result.
func (r *Registry) Parse(argv []string) error {
	for _, f := range r.flags {
		f.reset()
	}
	r.args = nil

	if len(r.errs) > 0 {
		return errors.Join(r.errs...)
	}

	name := "program"
	var args []string
	if len(argv) > 0 {
		name = filepath.Base(argv[0])
		args = argv[1:]
	}

	grammar := r.grammar()
	parser, err := kong.New(grammar.Interface(),
		kong.Name(name),
		kong.Writers(r.stdout, r.stderr),
		kong.Exit(r.exit),
	)
	if err != nil {
		return fmt.Errorf("failed to build flag grammar: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return fmt.Errorf("failed to parse arguments: %w", err)
	}

	parsed := grammar.Elem()
	for i, f := range r.flags {
		f.value.Set(parsed.Field(i))
	}
	r.args = parsed.Field(len(r.flags)).Interface().([]string)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Process-wide registry
///////////////////////////////////////////////////////////////////////////////

// CommandLine is the registry used by the package-level functions.
var CommandLine = NewRegistry()

// String registers a string option on CommandLine.
func String(name, def, usage string) *string {
	return CommandLine.String(name, def, usage)
}

// Int registers an int option on CommandLine.
func Int(name string, def int, usage string) *int {
	return CommandLine.Int(name, def, usage)
}

// Bool registers a bool option on CommandLine.
func Bool(name string, def bool, usage string) *bool {
	return CommandLine.Bool(name, def, usage)
}

// Parse parses argv into CommandLine.
func Parse(argv []string) error {
	return CommandLine.Parse(argv)
}

// Lookup returns the current value of a CommandLine option.
func Lookup(name string) (any, bool) {
	return CommandLine.Lookup(name)
}

// Args returns the positional arguments left after parsing CommandLine.
func Args() []string {
	return CommandLine.Args()
}
