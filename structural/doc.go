/*
Package structural decides whether a single candidate pattern matches a single value.

Values are untyped (interface{}), so the decision is made on the dynamic shape of the
value:

  - sequences (slices and arrays) match by canonical serialization: the pattern and the
    value have to serialize to identical JSON text
  - regular expressions match the textual form of the value
  - records (maps with string keys and structs) match by subset: every key of the
    pattern has to be present in the value with a strictly equal entry; extra keys of
    the value are ignored, and nested entries are not compared recursively
  - everything else matches by strict equality

Canonical serialization is order-sensitive. Maps serialize with sorted keys, structs
in declaration order. Cyclic structures are not supported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package structural

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'when.structural'.
func tracer() tracing.Trace {
	return tracing.Select("when.structural")
}
