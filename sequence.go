package asn1der

/*
sequence.go implements ASN.1 SEQUENCE composition (spec §4.5). The
Rust original this package is modeled on (see
original_source/asn1_derive/src/code_components.rs) generates this
exact per-field encode/decode algorithm at compile time, from a
derive macro reading struct field attributes. Go has no equivalent of
a derive macro, so this package's fallback — its "redesign", per
spec's own note that one is needed — builds the same per-field schema
at runtime via reflection over struct tags, once per type, and caches
it.

A Go struct becomes a SEQUENCE by wrapping it in [Sequence]:

	type Person struct {
	    Name IA5String        `asn1:"tag=0"`
	    Age  Integer          `asn1:"tag=1,optional"`
	}
	data := Encode(&Sequence[Person]{Value: p})

Each exported field must itself satisfy [Object] through its address
(PT in object.go's terms) unless tagged `asn1:"-"`, in which case it is
excluded from the schema. An `asn1:"-"`-free field whose address does
not satisfy [Object] is a programming error: in Strict mode (see
[SequenceOptions]) it panics the first time the type's schema is
built, mirroring how a derive macro would have refused to compile it;
in permissive mode it is silently excluded, matching this package's
default of tolerating fields not meant for the wire.
*/

import (
	"reflect"
	"sync"
)

/*
SequenceOptions configures how a SEQUENCE type is encoded and decoded.
A type opts into non-default options by implementing [Configurable].
*/
type SequenceOptions struct {
	/*
		Strict, when true, makes an exported field whose address does
		not implement [Object] a panic at schema-build time rather
		than a silently excluded field.
	*/
	Strict bool

	/*
		ApplicationTag, when non-nil, wraps the SEQUENCE in an
		APPLICATION-class constructed tag with this number instead of
		emitting the bare UNIVERSAL SEQUENCE tag (spec §8's
		`67 02 30 00` form).
	*/
	ApplicationTag *uint8
}

/*
Configurable is implemented by a SEQUENCE's field-struct type to
override its default [SequenceOptions]. The method must not depend on
the receiver's field values: it is also called on a zero value during
decode, before any field has been populated.
*/
type Configurable interface {
	SequenceOptions() SequenceOptions
}

/*
Sequence wraps a plain struct type T as the ASN.1 SEQUENCE composed
from T's exported fields, in declaration order. It implements [Object]
through its pointer, so it composes with [Decode], [Encode],
[SequenceOf] and itself (for nested SEQUENCEs) exactly like any
built-in primitive.
*/
type Sequence[T any] struct {
	Value T
}

func (s Sequence[T]) sequenceOptions() SequenceOptions {
	if cfg, ok := any(s.Value).(Configurable); ok {
		return cfg.SequenceOptions()
	}
	return SequenceOptions{}
}

/*
Tag reports the outer tag Encode/Decode frame around this value. With
an ApplicationTag option set, that outer tag is the APPLICATION wrap
(spec §8's `67 02 30 00` form) rather than the bare SEQUENCE tag: the
SEQUENCE's own `30` tag and length still appear, one level in, as the
APPLICATION tag's value — see EncodeValue/DecodeValue.
*/
func (s Sequence[T]) Tag() Tag {
	if at := s.sequenceOptions().ApplicationTag; at != nil {
		return NewTag(ClassApplication, Constructed, *at)
	}
	return NewConstructedUniversal(tagSequence)
}

func (s Sequence[T]) EncodeValue() []byte {
	v := reflect.ValueOf(&s.Value).Elem()
	fields := encodeSequenceFields(v, s.sequenceOptions())

	if s.sequenceOptions().ApplicationTag == nil {
		return fields
	}

	out := make([]byte, 0, 2+len(fields))
	out = append(out, encodeTag(NewConstructedUniversal(tagSequence))...)
	out = append(out, encodeLength(len(fields))...)
	out = append(out, fields...)
	return out
}

/*
DecodeValue decodes raw as the value region framed by Tag: with no
ApplicationTag, raw is directly the SEQUENCE's fields; with one, raw
is first unwrapped as a bare SEQUENCE TLV (its own `30` tag and
length) before the fields inside it are walked. Either way, a field
left over after every schema field has been tried fails the whole
SEQUENCE with [KindNoAllDataConsumed], wrapped with [WrapSequence].
*/
func (s *Sequence[T]) DecodeValue(raw []byte) error {
	v := reflect.ValueOf(&s.Value).Elem()
	name := seqTypeName(v.Type())
	opts := s.sequenceOptions()

	fields := raw
	if opts.ApplicationTag != nil {
		tag, tn, err := decodeTag(raw)
		if err != nil {
			return WrapSequence(name, err)
		}
		if tag != NewConstructedUniversal(tagSequence) {
			return WrapSequence(name, errUnmatchedTag(tag.Class))
		}
		length, ln, err := decodeLength(raw[tn:])
		if err != nil {
			return WrapSequence(name, err)
		}
		bodyStart := tn + ln
		if length > len(raw[bodyStart:]) {
			return WrapSequence(name, errNoDataForLength())
		}
		if bodyStart+length != len(raw) {
			return WrapSequence(name, errNoAllDataConsumed())
		}
		fields = raw[bodyStart : bodyStart+length]
	}

	err := decodeSequenceFields(v, fields, opts, name)
	if err == nil {
		return nil
	}
	if k, ok := KindOf(err); ok && k == KindSequenceField {
		return err
	}
	return WrapSequence(name, err)
}

/*
EncodeSequence encodes v as a SEQUENCE, per its exported fields' schema.
*/
func EncodeSequence[T any](v T) []byte {
	return Encode(&Sequence[T]{Value: v})
}

/*
DecodeSequence decodes a SEQUENCE of type T from the start of raw,
returning the octets consumed and the decoded value.
*/
func DecodeSequence[T any](raw []byte) (int, T, error) {
	n, seq, err := Decode[Sequence[T], *Sequence[T]](raw)
	return n, seq.Value, err
}

func seqTypeName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

type fieldSchema struct {
	index    int
	name     string
	ctxTag   uint8
	hasCtx   bool
	optional bool
}

type schemaKey struct {
	t      reflect.Type
	strict bool
}

var (
	schemaCache sync.Map // schemaKey -> schemaResult
	objectType  = reflect.TypeOf((*Object)(nil)).Elem()
)

/*
absentChecker is implemented by a field type that can hold "no value
at all" (see [Optional]), as opposed to merely being tagged optional
in the schema. schemaFor auto-marks any field of such a type as
optional without requiring the redundant `asn1:"...,optional"` token,
and encodeSequenceFields consults it to emit zero octets for a field
holding nothing.
*/
type absentChecker interface {
	isAbsent() bool
}

var absentCheckerType = reflect.TypeOf((*absentChecker)(nil)).Elem()

type schemaResult struct {
	schema []fieldSchema
	err    error
}

/*
schemaFor builds (and caches) the field schema for t. It fails with
[KindNotStruct] if t is not itself a struct, [KindUnknownAttribute] if
a field carries an `asn1` tag token this package does not recognize,
and [KindInvalidTagNumberValue] if a `tag=` token's literal is not a
valid 0..=255 integer — spec §4.6's "any other key is rejected" /
"integer values are parsed as non-negative literals in 0..=255"
attribute-surface rules. The result (schema or error) is cached
together, so a malformed schema fails the same way on every call.
*/
func schemaFor(t reflect.Type, strict bool) ([]fieldSchema, error) {
	key := schemaKey{t: t, strict: strict}
	if cached, ok := schemaCache.Load(key); ok {
		r := cached.(schemaResult)
		return r.schema, r.err
	}

	result := buildSchema(t, strict)
	actual, _ := schemaCache.LoadOrStore(key, result)
	r := actual.(schemaResult)
	return r.schema, r.err
}

func buildSchema(t reflect.Type, strict bool) schemaResult {
	if t.Kind() != reflect.Struct {
		return schemaResult{err: errNotStruct(t.String() + " is not a struct")}
	}

	var schema []fieldSchema
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}

		tagStr, hasTag := f.Tag.Lookup("asn1")
		if hasTag && tagStr == "-" {
			continue
		}

		if !reflect.PointerTo(f.Type).Implements(objectType) {
			if strict {
				panic(errImplementation("field " + t.Name() + "." + f.Name + " does not implement Object"))
			}
			continue
		}

		entry := fieldSchema{index: i, name: f.Name}
		for _, tok := range splitTag(tagStr) {
			switch {
			case tok == "":
				continue
			case tok == "optional":
				entry.optional = true
			case len(tok) > 4 && tok[:4] == "tag=":
				n, ok := parseUint8(tok[4:])
				if !ok {
					return schemaResult{err: errInvalidTagNumberValue(t.Name() + "." + f.Name + ": " + tok)}
				}
				entry.ctxTag = n
				entry.hasCtx = true
			default:
				return schemaResult{err: errUnknownAttribute(t.Name() + "." + f.Name + ": " + tok)}
			}
		}
		if f.Type.Implements(absentCheckerType) {
			entry.optional = true
		}
		schema = append(schema, entry)
	}

	return schemaResult{schema: schema}
}

func splitTag(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

func parseUint8(s string) (uint8, bool) {
	if s == "" {
		return 0, false
	}
	var n int
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 255 {
			return 0, false
		}
	}
	return uint8(n), true
}

/*
encodeSequenceFields encodes v's fields per its schema. schemaFor's
errors can only surface here as a panic: [Object.EncodeValue] has no
error return, so a malformed schema (spec §4.6's validation taxonomy)
is a programming error caught the first time the type is encoded,
same as the existing Strict-mode "field doesn't implement Object"
panic this joins.
*/
func encodeSequenceFields(v reflect.Value, opts SequenceOptions) []byte {
	schema, err := schemaFor(v.Type(), opts.Strict)
	if err != nil {
		panic(err)
	}

	var out []byte
	for _, e := range schema {
		obj := v.Field(e.index).Addr().Interface().(Object)
		if ac, ok := obj.(absentChecker); ok && ac.isAbsent() {
			debugTrace("encodeSequenceFields", "field absent, emitting zero octets", e.name)
			continue
		}

		enc := Encode(obj)
		if e.hasCtx {
			wrapped := make([]byte, 0, 2+len(enc))
			wrapped = append(wrapped, encodeTag(NewTag(ClassContext, Constructed, e.ctxTag))...)
			wrapped = append(wrapped, encodeLength(len(enc))...)
			wrapped = append(wrapped, enc...)
			enc = wrapped
		}
		out = append(out, enc...)
	}
	return out
}

/*
decodeSequenceFields walks the schema in declaration order, consuming
raw from the front. spec §4.5's two OPTIONAL recovery rules are
class-specific and asymmetric (see DESIGN.md, and
original_source/asn1_derive/src/code_components.rs's
invalid_tag_errors_handlers):

  - A context-tagged OPTIONAL field is absent whenever the leading tag
    fails to parse, or parses but isn't (ClassContext, Constructed,
    ctxTag) — any class at all "misses" the wrapper, so every tag
    failure here recovers.
  - A bare (no context tag) OPTIONAL field is absent only on a
    Universal-class tag failure, which includes an exhausted remainder
    (decodeTag reports that as [KindEmptyTag] with [ClassUniversal]).
    A Context-class mismatch there means a field this SEQUENCE doesn't
    describe follows at this position — that is unambiguous enough to
    be fatal rather than silently skipped, and the error is returned
    with the class decodeObject found.

Once a field's own tag (or, for a context-tagged field, its wrapper
tag) has matched, any further decode failure is fatal regardless of
optionality: a matched tag is a commitment to decode that field's
content.
*/
func decodeSequenceFields(v reflect.Value, raw []byte, opts SequenceOptions, seqName string) error {
	schema, err := schemaFor(v.Type(), opts.Strict)
	if err != nil {
		return err
	}
	pos := 0

	for _, e := range schema {
		obj := v.Field(e.index).Addr().Interface().(Object)
		remaining := raw[pos:]

		if e.hasCtx {
			tag, tn, err := decodeTag(remaining)
			if err != nil || tag.Class != ClassContext || tag.Form != Constructed || tag.Number != e.ctxTag {
				if e.optional {
					debugTrace("decodeSequenceFields", "context tag absent, field optional", e.name)
					continue
				}
				if err != nil {
					return WrapField(seqName, e.name, remapClass(err, ClassContext))
				}
				return WrapField(seqName, e.name, errUnmatchedTag(tag.Class))
			}

			length, ln, err := decodeLength(remaining[tn:])
			if err != nil {
				return WrapField(seqName, e.name, err)
			}
			bodyStart := tn + ln
			if length > len(remaining[bodyStart:]) {
				return WrapField(seqName, e.name, errNoDataForLength())
			}
			inner := remaining[bodyStart : bodyStart+length]

			n, err := decodeObject(obj, inner)
			if err != nil {
				return WrapField(seqName, e.name, err)
			}
			if n != len(inner) {
				return WrapField(seqName, e.name, errNoAllDataConsumed())
			}
			pos += bodyStart + length
			continue
		}

		n, err := decodeObject(obj, remaining)
		if err != nil {
			if e.optional && isTagMismatch(err, ClassUniversal) {
				debugTrace("decodeSequenceFields", "bare tag absent, field optional", e.name)
				continue
			}
			return WrapField(seqName, e.name, err)
		}
		pos += n
	}

	if pos != len(raw) {
		return errNoAllDataConsumed()
	}
	return nil
}

/*
remapClass returns err with its Class replaced by c, if err is an
[*Error] of one of the tag-related kinds. decodeTag's own empty-input
and truncated-high-tag-number failures always carry [ClassUniversal]
(it has no class byte to report yet — see tag.go), but a caller
expecting a specific class at this wire position, such as a
context-tagged SEQUENCE field, knows better: remapClass lets it report
the class it actually expected instead of tag.go's generic default.
*/
func remapClass(err error, c Class) error {
	e, ok := AsError(err)
	if !ok {
		return err
	}
	switch e.Kind {
	case KindEmptyTag, KindNotEnoughTagOctets, KindUnmatchedTag:
		return &Error{Kind: e.Kind, Class: c}
	}
	return err
}

/*
isTagMismatch reports whether err is a tag-related failure whose Class
equals want — the recoverable subset of tag errors for an OPTIONAL
field without a context tag (see decodeSequenceFields). A mismatch of
any other class is not recoverable here: it is handed back to the
caller as fatal.
*/
func isTagMismatch(err error, want Class) bool {
	e, ok := AsError(err)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindUnmatchedTag, KindEmptyTag, KindNotEnoughTagOctets:
		return e.Class == want
	}
	return false
}
