package bplus

import (
	"cmp"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type options struct {
	order  int
	logger logrus.FieldLogger
}

// Option configures a tree at construction time.
type Option func(*options)

// WithOrder sets the fan-out. Values below MinOrder are rejected by NewBPlusTree.
func WithOrder(order int) Option {
	return func(o *options) { o.order = order }
}

// WithLogger receives split and root-growth events at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

func NewBPlusTree[K, V any](cmp func(a, b K) int, opts ...Option) (*BPlusTree[K, V], error) {
	o := options{order: DefaultOrder}
	for _, opt := range opts {
		opt(&o)
	}
	if o.order < MinOrder {
		return nil, fmt.Errorf("order %d is below minimum %d", o.order, MinOrder)
	}
	if cmp == nil {
		return nil, fmt.Errorf("nil key comparator")
	}
	if o.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}

	store := newNodeStore[K, V](o.order)
	root := store.allocate(NodeLeaf)
	return &BPlusTree[K, V]{
		root:  root.id,
		order: o.order,
		store: store,
		cmp:   cmp,
		log:   o.logger,
	}, nil
}

// NewOrdered builds a tree over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) (*BPlusTree[K, V], error) {
	return NewBPlusTree[K, V](cmp.Compare[K], opts...)
}

// Order returns the configured fan-out.
func (t *BPlusTree[K, V]) Order() int {
	return t.order
}
