/*
Package inject provides explicit receiver-injection building blocks:
self-injecting methods, a process-wide type-keyed instance cache, keyed
singleton registries, lazily computed values, kwargs-bag parameter
filling, and a named variant registry.

# Self-injecting methods

A Method binds a function with an explicit receiver parameter so call
sites may omit the receiver entirely. When no receiver is supplied one is
obtained from the method's factory using one of three strategies chosen
at construction:

  - NewMethod: a fresh receiver is constructed on every call from the
    stored default kwargs (transient).
  - NewCachedMethod: the receiver is constructed once per owning type and
    reused process-wide for the life of the process.
  - NewSeededMethod: the receiver is constructed from the call kwargs that
    are not consumed by the method's declared parameters; the Clean
    variant strips those seeds from the forwarded kwargs.

A call site that does pass a receiver, either as the first positional
argument or under the receiver parameter's key, always wins; the wrapper strips
it from the forwarded arguments and never constructs a replacement.

	m := inject.NewCachedMethod(
		func(c *Codec, args []any, kw inject.Kwargs) (string, error) {
			return c.EncodeName(args[0].(string)), nil
		},
		func(inject.Kwargs) (*Codec, error) { return OpenCodec() },
	)

	out, err := m.Call([]any{"clip.mkv"}, nil) // receiver built once, reused

# Caches and registries

TypeCache is the explicit, injectable form of the process-wide receiver
cache: one instance per reflect.Type, populate-once, explicit Clear.
Concurrent first constructions are coalesced through singleflight.
Registry provides keyed singletons with GetOrCreate. VariantRegistry
replaces runtime subclass discovery: variants register constructors under
names at initialization and are instantiated by name.
*/
package inject
