package filter

import "strings"

// Kind is the governance family of an attribute name.
type Kind int

const (
	// None means the attribute belongs in the compiled table.
	None Kind = iota
	// Accessible is an accessibility (ARIA) attribute.
	Accessible
	// EventHandler is an event handler attribute.
	EventHandler
	// Namespaced carries an ev:, xml: or xlink: prefix.
	Namespaced
)

func (k Kind) String() string {
	switch k {
	case Accessible:
		return "accessible"
	case EventHandler:
		return "event-handler"
	case Namespaced:
		return "namespaced"
	default:
		return "none"
	}
}

// Namespace prefixes whose attributes are governed by other specifications.
const (
	NamespaceEvents = "ev"
	NamespaceXML    = "xml"
	NamespaceXLink  = "xlink"
)

// Classification is the result of Classify.
type Classification struct {
	Kind Kind
	// Namespace is set when Kind is Namespaced.
	Namespace string
}

// Foreign reports whether the classification excludes the attribute.
func (c Classification) Foreign() bool {
	return c.Kind != None
}

// Recognizer reports whether a name is an event handler attribute.
type Recognizer func(name string) bool

// IsEventHandler follows the hast convention: an "on" prefix (any case)
// on a name longer than four characters.
func IsEventHandler(name string) bool {
	return len(name) > 4 && strings.EqualFold(name[:2], "on")
}

// Filter classifies attribute names. The zero value is not usable; use New or Default.
type Filter struct {
	recognizer Recognizer
	namespaces map[string]struct{}
}

// Option configures a Filter.
type Option func(*Filter)

// WithRecognizer replaces the event handler recognizer.
func WithRecognizer(r Recognizer) Option {
	return func(f *Filter) {
		f.recognizer = r
	}
}

// WithNamespaces replaces the set of filtered namespace prefixes.
func WithNamespaces(prefixes ...string) Option {
	return func(f *Filter) {
		f.namespaces = make(map[string]struct{}, len(prefixes))
		for _, p := range prefixes {
			f.namespaces[p] = struct{}{}
		}
	}
}

// New creates a Filter with the default recognizer and namespaces.
func New(opts ...Option) *Filter {
	f := &Filter{recognizer: IsEventHandler}
	WithNamespaces(NamespaceEvents, NamespaceXML, NamespaceXLink)(f)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Default is the filter used by the build.
var Default = New()

// Classify returns the governance family of name.
func (f *Filter) Classify(name string) Classification {
	if _, ok := ariaSet[name]; ok {
		return Classification{Kind: Accessible}
	}
	if f.recognizer != nil && f.recognizer(name) {
		return Classification{Kind: EventHandler}
	}
	if i := strings.IndexByte(name, ':'); i != -1 {
		if _, ok := f.namespaces[name[:i]]; ok {
			return Classification{Kind: Namespaced, Namespace: name[:i]}
		}
	}
	return Classification{Kind: None}
}

// IsForeign reports whether name must be left out of the compiled table.
func (f *Filter) IsForeign(name string) bool {
	return f.Classify(name).Foreign()
}

// Classify classifies name with the Default filter.
func Classify(name string) Classification {
	return Default.Classify(name)
}

// IsForeign reports whether name is foreign according to the Default filter.
func IsForeign(name string) bool {
	return Default.IsForeign(name)
}
