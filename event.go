package recoplot

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrWrongType       = errors.New("product has wrong type")
)

// InputTag names a data product in an event: the label of the module
// that made it, an optional instance name and an optional process name.
type InputTag struct {
	Label    string
	Instance string
	Process  string
}

// ParseInputTag parses tags of the form label[:instance[:process]].
func ParseInputTag(s string) (InputTag, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return InputTag{}, fmt.Errorf("invalid input tag %q: too many fields", s)
	}
	if parts[0] == "" {
		return InputTag{}, fmt.Errorf("invalid input tag %q: empty label", s)
	}

	tag := InputTag{Label: parts[0]}
	if len(parts) > 1 {
		tag.Instance = parts[1]
	}
	if len(parts) > 2 {
		tag.Process = parts[2]
	}
	return tag, nil
}

func (t InputTag) String() string {
	switch {
	case t.Process != "":
		return t.Label + ":" + t.Instance + ":" + t.Process
	case t.Instance != "":
		return t.Label + ":" + t.Instance
	default:
		return t.Label
	}
}

// Event gives access to the data products of one event. A tag names at
// most one product.
type Event interface {
	Product(tag InputTag) (any, bool)
}

// GetValid looks up the product stored under tag and checks that it is
// a T. The error wraps ErrProductNotFound or ErrWrongType.
func GetValid[T any](ev Event, tag InputTag) (T, error) {
	var zero T
	prod, ok := ev.Product(tag)
	if !ok {
		return zero, fmt.Errorf("%w: %T with tag %q", ErrProductNotFound, zero, tag)
	}
	val, ok := prod.(T)
	if !ok {
		return zero, fmt.Errorf("%w: tag %q holds %T, not %T", ErrWrongType, tag, prod, zero)
	}
	return val, nil
}

// MemEvent is an Event backed by a map.
type MemEvent struct {
	products map[InputTag]any
}

func NewMemEvent() *MemEvent {
	return &MemEvent{products: make(map[InputTag]any)}
}

// Put stores prod under tag, replacing any previous product.
func (e *MemEvent) Put(tag InputTag, prod any) {
	e.products[tag] = prod
}

func (e *MemEvent) Product(tag InputTag) (any, bool) {
	prod, ok := e.products[tag]
	return prod, ok
}

func (e *MemEvent) Tags() []InputTag {
	tags := make([]InputTag, 0, len(e.products))
	for tag := range e.products {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}
