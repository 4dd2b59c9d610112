package testutil

import (
	"context"
	"errors"
	"sync"

	platformemail "github.com/rlsh74/tnsystems-website/internal/platform/email"
)

// ErrFakeTransport is returned by a FakeEmailSender configured to fail.
var ErrFakeTransport = errors.New("fake transport failure")

// FakeEmailSender captures emails in memory for tests.
// FailOn makes the n-th call (1-based) fail; 0 never fails.
type FakeEmailSender struct {
	mu     sync.Mutex
	Sent   []platformemail.Message
	calls  int
	failOn int
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{Sent: make([]platformemail.Message, 0)}
}

// NewFailingEmailSender fails the n-th Send call and records nothing for it.
func NewFailingEmailSender(n int) *FakeEmailSender {
	f := NewFakeEmailSender()
	f.failOn = n
	return f
}

func (f *FakeEmailSender) Send(ctx context.Context, msg platformemail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failOn > 0 && f.calls == f.failOn {
		return ErrFakeTransport
	}
	f.Sent = append(f.Sent, msg)
	return nil
}

// Calls counts every Send attempt, including failed ones.
func (f *FakeEmailSender) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeEmailSender) SentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}

func (f *FakeEmailSender) LastSent() *platformemail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

func (f *FakeEmailSender) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = make([]platformemail.Message, 0)
	f.calls = 0
}
