// Package binding groups the adapters that put third-party logging
// libraries behind the facade.
//
// Each subpackage adds its binding to logger.DefaultCatalog from init, so
// importing it for side effects is enough to make it available:
//
//	import (
//		_ "github.com/philipp01105/logfacade/binding/zapbinding"
//	)
//
// If it is the only external binding imported, it also becomes the
// default.
package binding
