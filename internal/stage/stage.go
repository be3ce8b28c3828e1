// Package stage is the application's miniature source graph: named on-screen
// elements with visibility state, a signal bus for lifecycle and visibility
// changes, and a scheduler for recurring actions. All signal deliveries and
// scheduled ticks run on a single dispatch goroutine, so everything hanging
// off the bus behaves as one logical thread of control.
package stage

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoElement indicates the named element does not exist.
var ErrNoElement = errors.New("no such element")

// Kind classifies stage elements. The countdown only writes text elements.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// SignalType identifies an element lifecycle or visibility event.
type SignalType int

const (
	SignalCreated SignalType = iota
	SignalDestroyed
	SignalRenamed
	SignalShown
	SignalHidden
	SignalTextChanged
)

// Signal carries one element event to subscribers.
type Signal struct {
	Type SignalType
	Name string
	// PrevName is set for rename signals only.
	PrevName string
	Kind     Kind
	// Active reports the element's visibility at emit time.
	Active bool
	// Text is set for text-change signals only.
	Text string
}

// ElementInfo is a read-only view of one element.
type ElementInfo struct {
	Name    string
	Kind    Kind
	Text    string
	Visible bool
}

type element struct {
	kind    Kind
	text    string
	visible bool
}

// Stage owns the element registry and the dispatch goroutine.
type Stage struct {
	mu       sync.Mutex
	elements map[string]*element
	order    []string
	handlers []func(Signal)

	work      chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an empty stage and starts its dispatch goroutine.
func New() *Stage {
	s := &Stage{
		elements: make(map[string]*element),
		work:     make(chan func(), 64),
		done:     make(chan struct{}),
	}
	go s.dispatch()
	return s
}

// Close stops the dispatch goroutine. Pending work is dropped.
func (s *Stage) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Do runs fn on the dispatch goroutine. UI handlers use it to funnel work
// onto the same thread of control that delivers signals and ticks.
func (s *Stage) Do(fn func()) {
	select {
	case s.work <- fn:
	case <-s.done:
	}
}

// Subscribe registers a signal handler. Handlers are invoked on the dispatch
// goroutine in subscription order.
func (s *Stage) Subscribe(handler func(Signal)) {
	s.mu.Lock()
	s.handlers = append(s.handlers, handler)
	s.mu.Unlock()
}

// CreateElement adds a named element and announces it.
func (s *Stage) CreateElement(name string, kind Kind, visible bool) error {
	s.mu.Lock()
	if _, exists := s.elements[name]; exists {
		s.mu.Unlock()
		return fmt.Errorf("element %q already exists", name)
	}
	s.elements[name] = &element{kind: kind, visible: visible}
	s.order = append(s.order, name)
	s.mu.Unlock()

	s.emit(Signal{Type: SignalCreated, Name: name, Kind: kind, Active: visible})
	return nil
}

// RemoveElement destroys a named element and announces it.
func (s *Stage) RemoveElement(name string) error {
	s.mu.Lock()
	item, exists := s.elements[name]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("remove %q: %w", name, ErrNoElement)
	}
	delete(s.elements, name)
	s.dropFromOrder(name)
	s.mu.Unlock()

	s.emit(Signal{Type: SignalDestroyed, Name: name, Kind: item.kind})
	return nil
}

// RenameElement changes an element's name and announces both names.
func (s *Stage) RenameElement(oldName, newName string) error {
	s.mu.Lock()
	item, exists := s.elements[oldName]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("rename %q: %w", oldName, ErrNoElement)
	}
	if _, taken := s.elements[newName]; taken {
		s.mu.Unlock()
		return fmt.Errorf("rename to %q: name taken", newName)
	}
	delete(s.elements, oldName)
	s.elements[newName] = item
	for position, entry := range s.order {
		if entry == oldName {
			s.order[position] = newName
		}
	}
	visible := item.visible
	kind := item.kind
	s.mu.Unlock()

	s.emit(Signal{Type: SignalRenamed, Name: newName, PrevName: oldName, Kind: kind, Active: visible})
	return nil
}

// ShowElement makes an element visible. Already-visible elements no-op.
func (s *Stage) ShowElement(name string) error {
	return s.setVisible(name, true)
}

// HideElement makes an element invisible. Already-hidden elements no-op.
func (s *Stage) HideElement(name string) error {
	return s.setVisible(name, false)
}

func (s *Stage) setVisible(name string, visible bool) error {
	s.mu.Lock()
	item, exists := s.elements[name]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("set visibility %q: %w", name, ErrNoElement)
	}
	if item.visible == visible {
		s.mu.Unlock()
		return nil
	}
	item.visible = visible
	kind := item.kind
	s.mu.Unlock()

	signalType := SignalShown
	if !visible {
		signalType = SignalHidden
	}
	s.emit(Signal{Type: signalType, Name: name, Kind: kind, Active: visible})
	return nil
}

// SetText replaces an element's text content and announces the change.
func (s *Stage) SetText(name, text string) error {
	s.mu.Lock()
	item, exists := s.elements[name]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("set text %q: %w", name, ErrNoElement)
	}
	item.text = text
	kind := item.kind
	visible := item.visible
	s.mu.Unlock()

	s.emit(Signal{Type: SignalTextChanged, Name: name, Kind: kind, Active: visible, Text: text})
	return nil
}

// Text returns an element's current text content.
func (s *Stage) Text(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, exists := s.elements[name]
	if !exists {
		return "", false
	}
	return item.text, true
}

// IsActive reports whether a named element exists and is visible.
func (s *Stage) IsActive(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, exists := s.elements[name]
	return exists && item.visible
}

// ElementKind returns the kind of a named element.
func (s *Stage) ElementKind(name string) (Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, exists := s.elements[name]
	if !exists {
		return "", false
	}
	return item.kind, true
}

// TextElements lists the bindable text elements as selector labels in the
// form "name (text)".
func (s *Stage) TextElements() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var labels []string
	for _, name := range s.order {
		if s.elements[name].kind == KindText {
			labels = append(labels, fmt.Sprintf("%s (%s)", name, KindText))
		}
	}
	return labels
}

// Elements returns a snapshot of every element in creation order.
func (s *Stage) Elements() []ElementInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]ElementInfo, 0, len(s.order))
	for _, name := range s.order {
		item := s.elements[name]
		infos = append(infos, ElementInfo{
			Name:    name,
			Kind:    item.kind,
			Text:    item.text,
			Visible: item.visible,
		})
	}
	return infos
}

func (s *Stage) dropFromOrder(name string) {
	for position, entry := range s.order {
		if entry == name {
			s.order = append(s.order[:position], s.order[position+1:]...)
			return
		}
	}
}

func (s *Stage) emit(sig Signal) {
	s.mu.Lock()
	handlers := append([]func(Signal){}, s.handlers...)
	s.mu.Unlock()

	s.Do(func() {
		for _, handler := range handlers {
			handler(sig)
		}
	})
}

func (s *Stage) dispatch() {
	for {
		select {
		case <-s.done:
			return
		case fn := <-s.work:
			fn()
		}
	}
}
