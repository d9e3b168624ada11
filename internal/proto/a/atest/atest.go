// Package atest links the testdata/a schema into the global protobuf
// registries. Import it for its side effect:
//
//	import _ "passfixture/internal/proto/a/atest"
package atest

import (
	"google.golang.org/protobuf/reflect/protoregistry" // protoregistry holds the global files and types

	"passfixture/internal/proto/a" // a owns the FooProto schema
)

func init() {
	if err := a.Register(protoregistry.GlobalFiles, protoregistry.GlobalTypes); err != nil {
		panic(err)
	}
}
