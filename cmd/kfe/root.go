// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kfe/config"
	"github.com/katalvlaran/kfe/ingest"
	"github.com/katalvlaran/kfe/internal/logger"
	"github.com/katalvlaran/kfe/pipeline"
	"github.com/katalvlaran/kfe/store"
)

const component = "kfe"

// app is the state shared by every subcommand.
type app struct {
	out io.Writer

	configPath string
	logLevel   string
	jsonLogs   bool
	storeKind  string
	dbPath     string

	params pipeline.Params
	shape  config.Shape
	search config.Optimize

	cfg config.Config
	log logger.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "kfe",
		Short:         "Binary pattern classifier with information-criterion tuning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warning|error")
	pf.BoolVar(&a.jsonLogs, "json-logs", false, "write JSON log lines instead of console output")
	pf.StringVar(&a.storeKind, "store", "", "run archive backend: memory|sqlite")
	pf.StringVar(&a.dbPath, "db-path", "", "sqlite database path")

	root.AddCommand(newRecomputeCmd(a), newOptimizeCmd(a), newRunsCmd(a))
	root.SetOut(out)

	return root
}

// bindInputs registers the pipeline and shape flags shared by recompute
// and optimize.
func (a *app) bindInputs(fs *pflag.FlagSet) {
	fs.IntVar(&a.params.Delta, "delta", pipeline.DefaultParams.Delta, "tolerance band half-width in intensity units")
	fs.Float64Var(&a.params.Selec, "selec", pipeline.DefaultParams.Selec, "reference vector selection threshold")
	fs.IntVar(&a.shape.Features, "features", 0, "training rows (image height after resampling)")
	fs.IntVar(&a.shape.Realizations, "realizations", 0, "training columns (image width after resampling)")
}

// setup loads the configuration, applies explicitly set flags on top of it
// and builds the logger.
func (a *app) setup(fs *pflag.FlagSet) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if fs.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if fs.Changed("json-logs") {
		cfg.Log.Console = !a.jsonLogs
	}
	if fs.Changed("store") {
		cfg.Store.Kind = a.storeKind
	}
	if fs.Changed("db-path") {
		cfg.Store.Path = a.dbPath
	}
	if fs.Changed("delta") {
		cfg.Params.Delta = a.params.Delta
	}
	if fs.Changed("selec") {
		cfg.Params.Selec = a.params.Selec
	}
	if fs.Changed("features") {
		cfg.Shape.Features = a.shape.Features
	}
	if fs.Changed("realizations") {
		cfg.Shape.Realizations = a.shape.Realizations
	}
	a.applySearchFlags(fs, &cfg.Optimize)

	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := logger.ParseLevel(cfg.Log.Level) // validated above
	if cfg.Log.Console {
		a.log = logger.NewConsoleLogger(lvl)
	} else {
		a.log = logger.NewZerolog(os.Stderr, lvl)
	}
	a.cfg = cfg

	return nil
}

// session decodes the class images and returns a session with the
// configured parameters already applied.
func (a *app) session(ctx context.Context, paths []string) (*pipeline.Session, pipeline.Result, error) {
	if len(paths) != a.cfg.Shape.Classes {
		return nil, pipeline.Result{}, fmt.Errorf("expected %d class images, got %d", a.cfg.Shape.Classes, len(paths))
	}

	Y, err := ingest.LoadFiles(ctx, paths, a.cfg.Shape.Features, a.cfg.Shape.Realizations)
	if err != nil {
		return nil, pipeline.Result{}, err
	}
	a.log.Info(component, "training set loaded", logger.Fields{
		"classes":      Y.Classes(),
		"features":     Y.Rows(),
		"realizations": Y.Cols(),
	})

	sess := pipeline.NewSession(pipeline.WithParams(a.cfg.Params), pipeline.WithLogger(a.log))
	if err = sess.Load(Y); err != nil {
		return nil, pipeline.Result{}, err
	}
	res, err := sess.Apply(a.cfg.Params)
	if err != nil {
		return nil, pipeline.Result{}, err
	}

	return sess, res, nil
}

// openStore returns an initialized archive; the caller closes it.
func (a *app) openStore(ctx context.Context) (store.Store, error) {
	s, err := store.NewStore(a.cfg.Store.Kind, a.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err = s.Init(ctx); err != nil {
		_ = store.CloseIfSupported(s)
		return nil, err
	}

	return s, nil
}
