// Package callkey derives canonical, comparable keys from call arguments.
package callkey

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Keyer is implemented by argument tuples that know their own canonical form.
type Keyer interface {
	CallKey() string
}

// Key identifies one argument tuple. Sum is the digest used for bucketing,
// Canon is the full encoding used to resolve digest collisions.
type Key struct {
	Sum   uint64
	Canon string
}

// Of encodes v. Values implementing Keyer supply their own encoding, anything
// else is encoded with its dynamic type and Go-syntax representation, which
// prints map keys in sorted order.
//
// The encoding is only as stable as the argument itself: funcs, channels and
// values hiding mutable state behind pointers do not make meaningful keys.
func Of(v any) Key {
	return FromCanon(Encode(v))
}

// FromCanon digests an already canonical encoding.
func FromCanon(canon string) Key {
	return Key{Sum: xxhash.Sum64String(canon), Canon: canon}
}

// Encode returns the canonical string form of a single value.
func Encode(v any) string {
	if k, ok := v.(Keyer); ok {
		return k.CallKey()
	}
	return fmt.Sprintf("%T:%#v", v, v)
}
