package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitestudio/internal/blocks"
	"github.com/alexisbeaulieu97/sitestudio/internal/catalog"
	"github.com/alexisbeaulieu97/sitestudio/internal/config"
	"github.com/alexisbeaulieu97/sitestudio/internal/events"
	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	"github.com/alexisbeaulieu97/sitestudio/internal/studio"
	"github.com/alexisbeaulieu97/sitestudio/internal/theme"
	"github.com/alexisbeaulieu97/sitestudio/internal/variant"
)

// AppContext bundles long-lived services created for one command run.
type AppContext struct {
	Config    *config.App
	Logger    *logger.Logger
	Templates *catalog.Registry
	Variants  *variant.Registry
	Presets   *theme.Manager
	Bus       *events.Bus
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	app, err := config.Load(flags.configFile)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	level := app.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: app.HumanLogs, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	templates := catalog.NewRegistry(log)
	builtin, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	if err := templates.RegisterAll(builtin); err != nil {
		return nil, err
	}
	if app.TemplatesDir != "" {
		extra, err := catalog.LoadDir(os.DirFS(app.TemplatesDir), ".")
		if err != nil {
			return nil, err
		}
		if err := templates.RegisterAll(extra); err != nil {
			return nil, err
		}
		log.WithFields(map[string]any{"dir": app.TemplatesDir, "count": len(extra)}).Debug("loaded extra templates")
	}

	variants := variant.NewRegistry(log)
	if err := blocks.RegisterAll(variants); err != nil {
		return nil, err
	}

	store, err := theme.NewFileStore(app.StorePath())
	if err != nil {
		return nil, err
	}

	return &AppContext{
		Config:    app,
		Logger:    log,
		Templates: templates,
		Variants:  variants,
		Presets:   theme.NewManager(store, log),
		Bus:       events.NewBus(log),
	}, nil
}

// NewStudio starts an editing session over the app's registries.
func (a *AppContext) NewStudio() *studio.Studio {
	return studio.New(studio.Deps{
		Templates: a.Templates,
		Variants:  a.Variants,
		Presets:   a.Presets,
		Bus:       a.Bus,
		Logger:    a.Logger,
		CSSPrefix: a.Config.CSSPrefix,
	})
}
