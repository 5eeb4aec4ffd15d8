// Package notify_test provides mock implementations for displayer testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"errors"
	"sync"
)

// MockDisplayer records every Display call and returns a configured error.
type MockDisplayer struct {
	mu sync.Mutex

	DisplayError error
	DisplayFunc  func(Request) error

	Calls       []Request
	LastRequest Request
}

// NewMockDisplayer creates a mock displayer that succeeds
func NewMockDisplayer() *MockDisplayer {
	return &MockDisplayer{Calls: make([]Request, 0)}
}

// WithDisplayError configures the mock to fail every Display call
func (m *MockDisplayer) WithDisplayError(err error) *MockDisplayer {
	m.DisplayError = err
	return m
}

// WithDisplayFunc configures a custom display function
func (m *MockDisplayer) WithDisplayFunc(fn func(Request) error) *MockDisplayer {
	m.DisplayFunc = fn
	return m
}

// Display records the call and returns the configured error
func (m *MockDisplayer) Display(_ context.Context, req Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.LastRequest = req

	if m.DisplayFunc != nil {
		return m.DisplayFunc(req)
	}
	return m.DisplayError
}

// CallCount returns the number of Display calls
func (m *MockDisplayer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Common test errors
var ErrMockDisplay = errors.New("mock display error")
