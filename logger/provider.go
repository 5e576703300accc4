package logger

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfacade/backend/nillog"
	"github.com/philipp01105/logfacade/backend/sloglog"
	"github.com/philipp01105/logfacade/backend/streamlog"
	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
)

// Provider resolves binding names to logger factories and owns the
// default binding name.
type Provider struct {
	registry *Registry
	catalog  *Catalog
	load     func() config.Config
	diag     core.Logger

	mu          sync.RWMutex
	defaultName string
}

// Option configures a Provider.
type Option func(*Provider)

// WithCatalog sets the catalog consulted by Initialize and Reset
// (default: DefaultCatalog).
func WithCatalog(c *Catalog) Option {
	return func(p *Provider) { p.catalog = c }
}

// WithConfig fixes the configuration instead of reading the environment
// on every Initialize and Reset.
func WithConfig(cfg config.Config) Option {
	return func(p *Provider) {
		p.load = func() config.Config { return cfg }
	}
}

// WithDiagnostics sets the logger that receives the provider's own
// resolution decisions at DEBUG (default: NIL).
func WithDiagnostics(l core.Logger) Option {
	return func(p *Provider) { p.diag = l }
}

// NewProvider creates a provider and initializes it.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		registry:    NewRegistry(),
		catalog:     DefaultCatalog,
		load:        config.FromEnvironment,
		diag:        nillog.New().New(),
		defaultName: FallbackName,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Initialize()
	return p
}

// Registry returns the provider's binding registry.
func (p *Provider) Registry() *Registry { return p.registry }

// Catalog returns the provider's discovery catalog.
func (p *Provider) Catalog() *Catalog { return p.catalog }

// Initialize clears the registry, registers the built-in bindings and
// every catalogued binding, and re-resolves the default name. Calling it
// again yields the same state.
func (p *Provider) Initialize() {
	cfg := p.load()

	p.registry.Clear()
	for _, f := range builtInFactories(cfg) {
		p.registry.Register(f)
	}
	for _, f := range p.catalog.factories(cfg) {
		p.registry.Register(f)
	}
	p.reset(cfg)
}

func builtInFactories(cfg config.Config) []core.Factory {
	return []core.Factory{
		nillog.New(),
		streamlog.New(streamlog.Options{
			Level:           cfg.Level,
			OutputFile:      cfg.OutputFile,
			Tee:             cfg.Tee,
			Format:          cfg.Format,
			PrintLevel:      cfg.PrintLevelValue(),
			TimestampFormat: cfg.TimestampFormat,
		}),
		sloglog.New(sloglog.WithFormat(cfg.Format)),
	}
}

// Reset re-resolves the default binding name from the current
// configuration, catalog and registry.
func (p *Provider) Reset() {
	p.reset(p.load())
}

func (p *Provider) reset(cfg config.Config) {
	name := p.resolve(cfg)
	p.mu.Lock()
	p.defaultName = name
	p.mu.Unlock()
}

func (p *Provider) resolve(cfg config.Config) string {
	if cfg.Binding != "" {
		p.diag.Debug("Using binding {0} from configuration", cfg.Binding)
		return cfg.Binding
	}

	if name, ok := p.fromInitializers(); ok {
		p.diag.Debug("Using binding {0} from initializer", name)
		return name
	}

	external := p.registry.External()
	switch len(external) {
	case 0:
	case 1:
		name := external[0].Name()
		p.diag.Debug("Using sole external binding {0}", name)
		return name
	default:
		p.diag.Debug("{0} external bindings registered, using {1}", len(external), FallbackName)
	}
	return FallbackName
}

// fromInitializers picks the qualifying initializer with the strictly
// highest priority; on a tie the first one wins.
func (p *Provider) fromInitializers() (string, bool) {
	var (
		best  Initializer
		found bool
	)
	for _, i := range p.catalog.Initializers() {
		if len(strings.TrimSpace(i.BindingName())) <= 1 {
			continue
		}
		if !found || i.Priority() > best.Priority() {
			best, found = i, true
		}
	}
	if !found {
		return "", false
	}
	return strings.TrimSpace(best.BindingName()), true
}

// DefaultName returns the current default binding name.
func (p *Provider) DefaultName() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.defaultName
}

// SetDefaultName overrides the default binding name. The empty string
// restores FallbackName.
func (p *Provider) SetDefaultName(name string) {
	if name == "" {
		name = FallbackName
	}
	p.mu.Lock()
	p.defaultName = name
	p.mu.Unlock()
}

// Register adds a binding to the registry. The default name is not
// re-resolved; call Reset for that.
func (p *Provider) Register(f core.Factory) {
	p.registry.Register(f)
}

// Deregister removes a binding from the registry.
func (p *Provider) Deregister(name string) {
	p.registry.Deregister(name)
}

// Factory returns the factory registered under name. When there is none
// it returns a DeferredFactory that switches to the binding once it is
// registered. Factory never returns nil and panics on an empty name.
func (p *Provider) Factory(name string) core.Factory {
	if name == "" {
		panic(fmt.Errorf("%w: binding name must not be empty", ErrInvalidArgument))
	}
	if f := p.registry.Lookup(name); f != nil {
		return f
	}
	return NewDeferredFactory(name, p.registry)
}

// DefaultFactory returns the factory of the default binding.
func (p *Provider) DefaultFactory() core.Factory {
	return p.Factory(p.DefaultName())
}

// Logger returns the named logger of the default binding.
func (p *Provider) Logger(name string) core.Logger {
	return p.DefaultFactory().Logger(name)
}

// LoggerOf returns a logger named after the type of v.
func (p *Provider) LoggerOf(v any) core.Logger {
	return p.Logger(TypeName(v))
}

// Leveled returns the named logger of the default binding wrapped for
// printf-style logging.
func (p *Provider) Leveled(name string) *Leveled {
	return NewLeveled(p.Logger(name))
}

// Close closes every registered factory that holds resources, such as an
// open output file.
func (p *Provider) Close() error {
	var err error
	for _, f := range p.registry.all() {
		if c, ok := f.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

// TypeName returns the package-qualified type name of v, dereferencing
// pointers ("net/http.Client"). A reflect.Type is named directly; nil
// yields the anonymous logger name.
func TypeName(v any) string {
	if v == nil {
		return core.AnonymousLoggerName
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
