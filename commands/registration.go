// Package commands exposes the module's command handlers so host applications
// can dispatch record mutations through their own command bus, CLI, or cron
// tooling.
package commands

import (
	"errors"

	internalcmd "github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/commands/recordscmd"
	"github.com/goliatone/go-localize/internal/commands/translatecmd"
	"github.com/goliatone/go-localize/internal/di"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Command messages and handlers, re-exported so hosts can construct and
// dispatch them without reaching into internal packages.
type (
	SaveTranslationCommand = recordscmd.SaveTranslationCommand
	SaveTranslationHandler = recordscmd.SaveTranslationHandler
	DeleteRecordCommand    = recordscmd.DeleteRecordCommand
	DeleteRecordHandler    = recordscmd.DeleteRecordHandler
	AutoTranslateCommand   = translatecmd.AutoTranslateCommand
	AutoTranslateHandler   = translatecmd.AutoTranslateHandler
	DraftSink              = translatecmd.DraftSink
)

// NewSaveTranslationHandler re-exports the records save handler constructor.
var NewSaveTranslationHandler = recordscmd.NewSaveTranslationHandler

// NewDeleteRecordHandler re-exports the records delete handler constructor.
var NewDeleteRecordHandler = recordscmd.NewDeleteRecordHandler

// NewAutoTranslateHandler re-exports the auto-translate handler constructor.
var NewAutoTranslateHandler = translatecmd.NewAutoTranslateHandler

// CommandRegistry records command handlers so hosts can expose them via CLI tooling.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
	// TranslateDraftSink receives auto-translate drafts; a nil sink discards
	// them after logging.
	TranslateDraftSink DraftSink
}

// RegistrationResult captures the constructed command handlers and any
// dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers over the provided
// container's services and optionally registers them with registry/dispatcher
// integrations. The auto-translate handler is built only when the translate
// feature is wired.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	loggerFor := func(module string) interfaces.Logger {
		return internalcmd.CommandLogger(provider, module)
	}

	if service := container.Records(); service != nil {
		recordsLogger := loggerFor("records")
		register(recordscmd.NewSaveTranslationHandler(service, recordsLogger))
		register(recordscmd.NewDeleteRecordHandler(service, recordsLogger))

		if translator := container.Translator(); translator != nil {
			register(translatecmd.NewAutoTranslateHandler(
				service,
				translator,
				container.Registry(),
				opts.TranslateDraftSink,
				loggerFor("translate"),
			))
		}
	}

	if errs != nil && len(result.Handlers) == 0 {
		return result, errs
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure the record service is configured")
	}

	return result, errs
}
