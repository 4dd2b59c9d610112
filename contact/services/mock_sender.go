// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	platformemail "github.com/rlsh74/tnsystems-website/internal/platform/email"
	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of the email.Sender interface
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg platformemail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
