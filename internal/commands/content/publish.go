// Package contentcmd carries the status-transition commands shared by the
// publishable resources (blogs, FAQs, products, popups, terms).
package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-admin-data/internal/commands"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

const (
	publishMessageType   = "admin.content.publish"
	unpublishMessageType = "admin.content.unpublish"

	statusPublished = "Published"
	statusDraft     = "Draft"
)

// PublishCommand requests that a record move to the published status.
type PublishCommand struct {
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
}

// Type implements command.Message.
func (PublishCommand) Type() string { return publishMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishCommand) Validate() error {
	errs := validation.Errors{}
	if m.Resource == "" {
		errs["resource"] = validation.NewError("admin.content.publish.resource_required", "resource is required")
	}
	if m.RecordID == "" {
		errs["record_id"] = validation.NewError("admin.content.publish.record_id_required", "record_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishCommand requests that a record move back to draft.
type UnpublishCommand struct {
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
}

// Type implements command.Message.
func (UnpublishCommand) Type() string { return unpublishMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UnpublishCommand) Validate() error {
	errs := validation.Errors{}
	if m.Resource == "" {
		errs["resource"] = validation.NewError("admin.content.unpublish.resource_required", "resource is required")
	}
	if m.RecordID == "" {
		errs["record_id"] = validation.NewError("admin.content.unpublish.record_id_required", "record_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProviderResolver maps a resource key to its data provider. The provider
// registry satisfies this.
type ProviderResolver interface {
	Resolve(resource string) interfaces.DataProvider
}

// PublishHandler flips records to the published status via the resource's
// provider using the shared command handler foundation.
type PublishHandler struct {
	inner *commands.Handler[PublishCommand]
}

// NewPublishHandler constructs a handler wired to the provider registry.
func NewPublishHandler(resolver ProviderResolver, logger interfaces.Logger, opts ...commands.HandlerOption[PublishCommand]) *PublishHandler {
	exec := func(ctx context.Context, msg PublishCommand) error {
		provider := resolver.Resolve(msg.Resource)
		_, err := provider.Update(ctx, msg.RecordID, map[string]any{
			"status": statusPublished,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishCommand]{
		commands.WithLogger[PublishCommand](logger),
		commands.WithOperation[PublishCommand]("content.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishHandler{
		inner: commands.NewHandler[PublishCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishCommand].Execute.
func (h *PublishHandler) Execute(ctx context.Context, msg PublishCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UnpublishHandler reverts records to draft via the resource's provider.
type UnpublishHandler struct {
	inner *commands.Handler[UnpublishCommand]
}

// NewUnpublishHandler constructs a handler wired to the provider registry.
func NewUnpublishHandler(resolver ProviderResolver, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishCommand]) *UnpublishHandler {
	exec := func(ctx context.Context, msg UnpublishCommand) error {
		provider := resolver.Resolve(msg.Resource)
		_, err := provider.Update(ctx, msg.RecordID, map[string]any{
			"status": statusDraft,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[UnpublishCommand]{
		commands.WithLogger[UnpublishCommand](logger),
		commands.WithOperation[UnpublishCommand]("content.unpublish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishHandler{
		inner: commands.NewHandler[UnpublishCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnpublishCommand].Execute.
func (h *UnpublishHandler) Execute(ctx context.Context, msg UnpublishCommand) error {
	return h.inner.Execute(ctx, msg)
}
