// Package logger is the public API of logfacade.
//
// Application code asks for a logger by name and logs through the
// core.Logger capability. Which backend actually receives the messages is
// decided at runtime by a Provider:
//
//	log := logger.Get("app.db")
//	log.Info("connected to {0}", host)
//
// A Provider owns a Registry of bindings (named logger factories) and a
// default binding name. The default is chosen by Reset, in this order:
//
//  1. an explicit name from configuration (LOGFACADE_BINDING)
//  2. the highest-priority Initializer in the provider's Catalog
//  3. the only registered external binding, when there is exactly one
//  4. STDOUT
//
// Asking for a binding that is not registered never fails. Factory returns
// a DeferredFactory whose loggers write to the console until the binding
// appears in the registry, then switch to it for good, keeping the level
// set on them in the meantime.
//
// Binding packages make themselves discoverable by adding a constructor to
// DefaultCatalog from init, so a blank import is enough:
//
//	import _ "github.com/philipp01105/logfacade/binding/zapbinding"
//
// The package-level functions operate on a process-wide Provider created
// on first use.
package logger
