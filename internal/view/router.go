package view

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type State string

const (
	Landing    State = "LANDING"
	AdminLogin State = "ADMIN_LOGIN"
	Admin      State = "ADMIN"
)

type Event string

const (
	EnterAdmin    Event = "ENTER_ADMIN"
	Authenticated Event = "AUTHENTICATED"
	Cancel        Event = "CANCEL"
	Logout        Event = "LOGOUT"
)

const (
	RootPath  = "/"
	AdminPath = "/admin"
)

var ErrInvalidTransition = errors.New("invalid view transition")

type transition struct {
	from  State
	event Event
}

var transitions = map[transition]State{
	{Landing, EnterAdmin}:       AdminLogin,
	{AdminLogin, Authenticated}: Admin,
	{AdminLogin, Cancel}:        Landing,
	{Admin, Logout}:             Landing,
}

// Router is the top-level view state machine.
type Router struct {
	mu    sync.RWMutex
	state State
}

// NewRouter picks the initial view from the path the storefront was opened on.
func NewRouter(startPath string) *Router {
	state := Landing
	if strings.TrimRight(startPath, "/") == AdminPath {
		state = AdminLogin
	}
	return &Router{state: state}
}

func (r *Router) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Path is the location that corresponds to the current view.
func (r *Router) Path() string {
	if r.State() == Landing {
		return RootPath
	}
	return AdminPath
}

// Fire applies ev. Unknown transitions leave the state untouched.
func (r *Router) Fire(ev Event) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, ok := transitions[transition{r.state, ev}]
	if !ok {
		return r.state, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, r.state)
	}
	r.state = next
	return next, nil
}
