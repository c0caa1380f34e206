package ric

import (
	"fmt"

	"github.com/free5gc/e2ap/pkg/e2apType"
)

const (
	DefaultMaxActions         = int(e2apType.MaxofRICactionID)
	DefaultMaxOctetStringSize = 65535
)

// Limits bounds the cardinality of action lists and the size of every
// opaque buffer copied by the builders and extractors.
type Limits struct {
	MaxActions         int `yaml:"maxActions" valid:"range(1|16),optional"`
	MaxOctetStringSize int `yaml:"maxOctetStringSize" valid:"range(1|16777215),optional"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxActions:         DefaultMaxActions,
		MaxOctetStringSize: DefaultMaxOctetStringSize,
	}
}

// Normalize fills zero fields with defaults.
func (l Limits) Normalize() Limits {
	if l.MaxActions <= 0 {
		l.MaxActions = DefaultMaxActions
	}
	if l.MaxOctetStringSize <= 0 {
		l.MaxOctetStringSize = DefaultMaxOctetStringSize
	}
	return l
}

func (l Limits) CheckActions(n int) error {
	if n > l.MaxActions {
		return fmt.Errorf("%w: %d > %d", ErrTooManyActions, n, l.MaxActions)
	}
	return nil
}

// CopyOctets returns an independent copy of b. A nil b yields nil.
func (l Limits) CopyOctets(name string, b []byte) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	if len(b) > l.MaxOctetStringSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrAllocation, name, len(b), l.MaxOctetStringSize)
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return buf, nil
}
