package bloom

import (
	"github.com/go-logr/logr"

	"github.com/rag-nar1/sized-bloom/filter"
)

type options struct {
	alloc Allocator
	hash  filter.Hash
	log   logr.Logger

	// hash32 is set while the default 32 bit family is in use.
	hash32 bool
}

type Option func(*options)

// WithAllocator sets the allocator the bit array is drawn from.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithHash replaces the default seeded murmur3 family.
func WithHash(h filter.Hash) Option {
	return func(o *options) {
		o.hash = h
		o.hash32 = false
	}
}

func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

func defaultOptions() options {
	return options{
		alloc: HeapAllocator{},
		hash:  filter.SeededMurmur3,
		log:   logr.Discard(),

		hash32: true,
	}
}
