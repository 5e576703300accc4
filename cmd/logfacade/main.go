// Command logfacade inspects binding resolution and emits test messages
// through the facade.
//
//	logfacade bindings
//	logfacade emit --level WARNING --logger app.db "pool at {0}%" 93
//	LOGFACADE_BINDING=ZAP logfacade emit hello
package main

import (
	"os"

	_ "github.com/philipp01105/logfacade/binding/journalbinding"
	_ "github.com/philipp01105/logfacade/binding/logrbinding"
	_ "github.com/philipp01105/logfacade/binding/logrusbinding"
	_ "github.com/philipp01105/logfacade/binding/zapbinding"
	_ "github.com/philipp01105/logfacade/binding/zerologbinding"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
