package lambdaioc

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Key names a binding. It must be a non-empty string or a *Token.
//
// Strings containing GroupSeparator make the binding a member of a group, see
// ResolveGroup.
type Key = any

const (
	// SelfKey is reserved: resolving it returns the container the resolution
	// runs against. It cannot be registered.
	SelfKey = "$"

	// GroupSeparator splits a string key into "<group>:<member>".
	GroupSeparator = ":"
)

var tokenSequence atomic.Uint64

// Token is an unforgeable key. Two tokens are only equal if they are the same
// pointer, no matter their description.
type Token struct {
	id          uint64
	description string
}

// NewToken creates a Token. The description is only used in error messages.
func NewToken(description string) *Token {
	return &Token{
		id:          tokenSequence.Add(1),
		description: description,
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("Token(%s)", t.description)
}

func isValidKey(key Key) bool {
	switch k := key.(type) {
	case string:
		return k != ""
	case *Token:
		return k != nil
	default:
		return false
	}
}

func mustBeRegistrableKey(key Key) {
	if !isValidKey(key) {
		panic(fmt.Sprintf("invalid key %#v: keys must be non-empty strings or *Token", key))
	}
	if key == SelfKey {
		panic(fmt.Sprintf("%q is reserved for self resolution and cannot be registered", SelfKey))
	}
}

// groupMember reports whether key is "<prefix>:<something>".
func groupMember(key Key, prefix string) bool {
	name, ok := key.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(name, prefix+GroupSeparator)
}

func describeKey(key Key) string {
	switch k := key.(type) {
	case string:
		return fmt.Sprintf("%q", k)
	case *Token:
		return k.String()
	default:
		return fmt.Sprintf("%#v", k)
	}
}

// keyHasher lets keys live in immutable maps. Only valid keys ever reach it.
type keyHasher struct{}

func (keyHasher) Hash(key Key) uint32 {
	switch k := key.(type) {
	case string:
		sum := xxhash.Sum64String(k)
		return uint32(sum ^ (sum >> 32))
	case *Token:
		return uint32(k.id ^ (k.id >> 32))
	default:
		panic(fmt.Sprintf("cannot hash key %#v", key))
	}
}

func (keyHasher) Equal(a, b Key) bool {
	return a == b
}
