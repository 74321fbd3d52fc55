package nav

import (
	"context"
	"log"
	"sync"
)

// Target names a navigation destination that has no backend yet.
type Target string

const (
	SignUp      Target = "sign-up"
	LogIn       Target = "log-in"
	Search      Target = "search"
	Contact     Target = "contact"
	Stays       Target = "stays"
	Flights     Target = "flights"
	Experiences Target = "experiences"
	About       Target = "about"
	Careers     Target = "careers"
	Press       Target = "press"
	Terms       Target = "terms"
)

// Known lists every target the site renders controls for.
var Known = []Target{
	SignUp, LogIn, Search, Contact,
	Stays, Flights, Experiences,
	About, Careers, Press, Terms,
}

// IsKnown reports whether t is one of the Known targets.
func IsKnown(t Target) bool {
	for _, k := range Known {
		if k == t {
			return true
		}
	}
	return false
}

// Navigator receives navigation requests from rendered pages. A router
// outside this module is expected to provide the real behaviour.
type Navigator interface {
	OnNavigate(ctx context.Context, target Target) error
}

// HandlerFunc is an extension point attached to a single target.
type HandlerFunc func(ctx context.Context, target Target) error

// Hooks is the default Navigator. Every target is a no-op until a handler
// is registered for it.
type Hooks struct {
	mu       sync.RWMutex
	handlers map[Target]HandlerFunc
}

func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[Target]HandlerFunc)}
}

// Register attaches fn to target, replacing any previous handler.
func (h *Hooks) Register(target Target, fn HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[target] = fn
}

// OnNavigate runs the handler registered for target, or logs and returns
// nil when there is none.
func (h *Hooks) OnNavigate(ctx context.Context, target Target) error {
	h.mu.RLock()
	fn, ok := h.handlers[target]
	h.mu.RUnlock()

	if !ok {
		log.Printf("[NAV] no handler for %q, ignoring", target)
		return nil
	}
	return fn(ctx, target)
}

// Path is the URL rendered controls post to for target.
func Path(target Target) string {
	return "/navigate/" + string(target)
}
