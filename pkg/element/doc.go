// Package element implements the type-erased object model for document
// elements.
//
// Every element type is described by a single static [Table]: metadata, a
// sub-table per field, and the operations needed to construct, compare,
// hash, format, clone, and destroy records of that type. Generic engine code
// manipulates elements solely through type-erased [Record] handles and never
// learns concrete element types.
//
// # Defining an element
//
// Element types are plain structs. A static descriptor is built once, at
// package initialization, through the generic [Define] builder and converted
// into its erased form by [Definition.Erase]:
//
//	type Quote struct {
//	    Body string
//	}
//
//	var QuoteType = element.Define[Quote](
//	    "quote", "Quote", "A block quote.",
//	    quoteFields, quoteFieldID, nil, nil,
//	).Erase()
//
//	var QuoteElem = QuoteType.Table()
//
// Erasure happens exactly once per type. Each typed operation is wrapped in
// an adapter that reinterprets the record payload as the defining type
// without checking; this is sound because payloads enter records only
// through [Type.Pack], which ties them to their own descriptor.
//
// # Type identity
//
// Descriptor tables are unique per element type for the process lifetime,
// so "is this record a quote" is a single pointer comparison:
//
//	if rec.Is(QuoteElem) { ... }
//
// # Records and lifetime
//
// A Record is a shared handle with an atomic reference count. [Record.Retain]
// adds a reference, [Record.Release] drops one; when the count reaches zero
// the descriptor's destroy hook runs exactly once and the record must not be
// used again. Descriptors are immutable, so any number of goroutines may
// read, retain, and release records concurrently.
//
// # Capabilities
//
// Beyond the fixed operation set, a type may answer [Table.Capability] with
// an implementation of an optional interface identified by a [Capability]
// token. This second dispatch axis lets some types support cross-cutting
// interfaces without reserving a slot in every descriptor.
package element
