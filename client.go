// Copyright 2025 MediatR-Go Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mediatr provides the main entry point for the in-process
// mediator: a Client bundling a handler registry with a dispatch engine,
// plus thin generic wrappers over the dispatch operations.
package mediatr

import (
	"context"
	"log/slog"

	"github.com/Ngnintedem3004/MediatR/contracts"
	"github.com/Ngnintedem3004/MediatR/dispatch"
)

// Client bundles a Registry and a Mediator configured together.
type Client struct {
	registry *dispatch.Registry
	mediator *dispatch.Mediator
	logger   *slog.Logger
}

type clientConfig struct {
	logger    *slog.Logger
	behaviors []dispatch.Behavior
}

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// WithClientLogger sets the logger used by the registry and the mediator.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithClientBehaviors appends behaviors to the mediator's request pipeline.
func WithClientBehaviors(behaviors ...dispatch.Behavior) ClientOption {
	return func(cfg *clientConfig) {
		cfg.behaviors = append(cfg.behaviors, behaviors...)
	}
}

// NewClient creates a client with an empty registry.
func NewClient(options ...ClientOption) *Client {
	cfg := &clientConfig{
		logger: slog.Default(),
	}

	for _, opt := range options {
		opt(cfg)
	}

	registry := dispatch.NewRegistry(dispatch.WithRegistryLogger(cfg.logger))
	mediator := dispatch.NewMediator(registry,
		dispatch.WithLogger(cfg.logger),
		dispatch.WithBehaviors(cfg.behaviors...),
	)

	return &Client{
		registry: registry,
		mediator: mediator,
		logger:   cfg.logger,
	}
}

// Registry returns the client's handler registry.
func (c *Client) Registry() *dispatch.Registry {
	return c.registry
}

// Mediator returns the client's dispatch engine.
func (c *Client) Mediator() *dispatch.Mediator {
	return c.mediator
}

// Send dispatches a synchronous request through the client's mediator.
func Send[Resp any, Req contracts.Request[Resp]](c *Client, req Req) (Resp, error) {
	return dispatch.Send[Resp](c.mediator, req)
}

// SendAsync dispatches an asynchronous request through the client's
// mediator.
func SendAsync[Resp any, Req contracts.Request[Resp]](c *Client, req Req) *contracts.Future[Resp] {
	return dispatch.SendAsync[Resp](c.mediator, req)
}

// SendContext dispatches a cancellable asynchronous request through the
// client's mediator.
func SendContext[Resp any, Req contracts.Request[Resp]](ctx context.Context, c *Client, req Req) *contracts.Future[Resp] {
	return dispatch.SendContext[Resp](ctx, c.mediator, req)
}

// Publish dispatches a synchronous notification through the client's
// mediator.
func Publish[N contracts.Notification](c *Client, notification N) error {
	return dispatch.Publish(c.mediator, notification)
}

// PublishAsync dispatches an asynchronous notification through the
// client's mediator.
func PublishAsync[N contracts.Notification](c *Client, notification N) *contracts.Future[contracts.Unit] {
	return dispatch.PublishAsync(c.mediator, notification)
}

// PublishContext dispatches a cancellable asynchronous notification through
// the client's mediator.
func PublishContext[N contracts.Notification](ctx context.Context, c *Client, notification N) *contracts.Future[contracts.Unit] {
	return dispatch.PublishContext(ctx, c.mediator, notification)
}

// CreateStream dispatches a stream request through the client's mediator.
func CreateStream[T any, Req any](ctx context.Context, c *Client, req Req) (<-chan T, error) {
	return dispatch.CreateStream[T](ctx, c.mediator, req)
}
