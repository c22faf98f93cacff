// Package newslettercmd exports newsletter subscribers to CSV.
package newslettercmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-admin-data/internal/commands"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

const exportMessageType = "admin.newsletter.export"

// csvColumns fixes the export column order regardless of record map order.
var csvColumns = []string{"email", "name", "status", "createdAt"}

// SubscriberSource yields the full subscriber set for export. The newsletter
// provider satisfies this.
type SubscriberSource interface {
	FetchAll(ctx context.Context) ([]interfaces.Record, error)
}

// ExportCommand streams every subscriber as CSV to the given writer.
type ExportCommand struct {
	Writer io.Writer `json:"-"`
}

// Type implements command.Message.
func (ExportCommand) Type() string { return exportMessageType }

// Validate ensures the message carries a destination before reaching handlers.
func (m ExportCommand) Validate() error {
	if m.Writer == nil {
		return validation.Errors{
			"writer": validation.NewError("admin.newsletter.export.writer_required", "writer is required"),
		}
	}
	return nil
}

// ExportHandler fetches all subscribers and writes them as CSV using the
// shared command handler foundation.
type ExportHandler struct {
	inner *commands.Handler[ExportCommand]
}

// NewExportHandler constructs a handler wired to the subscriber source.
func NewExportHandler(source SubscriberSource, logger interfaces.Logger, opts ...commands.HandlerOption[ExportCommand]) *ExportHandler {
	exec := func(ctx context.Context, msg ExportCommand) error {
		subscribers, err := source.FetchAll(ctx)
		if err != nil {
			return err
		}

		writer := csv.NewWriter(msg.Writer)
		if err := writer.Write(csvColumns); err != nil {
			return fmt.Errorf("newsletter export: write header: %w", err)
		}
		for _, subscriber := range subscribers {
			row := make([]string, len(csvColumns))
			for i, column := range csvColumns {
				row[i] = stringField(subscriber, column)
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("newsletter export: write row: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("newsletter export: flush: %w", err)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportCommand]{
		commands.WithLogger[ExportCommand](logger),
		commands.WithOperation[ExportCommand]("newsletter.export"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportHandler{
		inner: commands.NewHandler[ExportCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportCommand].Execute.
func (h *ExportHandler) Execute(ctx context.Context, msg ExportCommand) error {
	return h.inner.Execute(ctx, msg)
}

func stringField(record interfaces.Record, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
