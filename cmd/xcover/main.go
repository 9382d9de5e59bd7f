// Command xcover reduces and solves exact-cover instances given as dense or
// numeric row matrices, following the original ExactCover tool's flag
// table (see SPEC_FULL.md §6). Flags are exposed in cobra/pflag's
// standard `--longname` form rather than the original tool's single-dash
// argv style, since that is how every flag in this pipeline is actually
// parsed once routed through pflag.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/engine"
	"github.com/katalvlaran/xcover/format"
	"github.com/katalvlaran/xcover/lattice"
	"github.com/katalvlaran/xcover/persist"
	"github.com/katalvlaran/xcover/reduce"
)

type flags struct {
	noReduce         bool
	reduceTries      int
	onlyReduce       bool
	reduceGroups     bool
	numeric          bool
	saveIntermediate bool
}

func main() {
	os.Exit(mainRun())
}

// mainRun is the entry point testscript's RunMain drives as the "xcover"
// subprocess command, separated from main() so it returns its exit code
// instead of calling os.Exit itself.
func mainRun() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (exitCode int) {
	log, _ := zap.NewProduction()
	if log == nil {
		log = zap.NewNop()
	}
	defer log.Sync() //nolint:errcheck

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))

	defer func() {
		if r := recover(); r != nil {
			var corrupt *lattice.CorruptionError
			if errors.As(asError(r), &corrupt) {
				log.Error("fatal lattice invariant violation", zap.String("op", corrupt.Op), zap.String("detail", corrupt.Detail))
				fmt.Fprintf(stderr, "xcover: fatal: %v\n", corrupt)
				exitCode = 1
				return
			}
			panic(r)
		}
	}()

	var f flags
	var inputPath string

	root := &cobra.Command{
		Use:           "xcover [input-file]",
		Short:         "Reduce and solve exact-cover instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if len(cmdArgs) == 1 {
				inputPath = cmdArgs[0]
			}
			return runXcover(f, inputPath, stdin, stdout, log)
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().BoolVar(&f.noReduce, "noreduce", false, "skip all reduction passes")
	root.Flags().IntVar(&f.reduceTries, "reducetries", 1000, "lookahead budget seed")
	root.Flags().BoolVar(&f.onlyReduce, "onlyreduce", false, "reduce, emit reduced matrix, exit")
	root.Flags().BoolVar(&f.reduceGroups, "reducegroups", false, "enable group reduction (Pass C)")
	root.Flags().BoolVar(&f.numeric, "numeric", false, "use numeric input format")
	root.Flags().BoolVar(&f.saveIntermediate, "save_intermediate", false, "write the matrix to reduced.ec once after reduction and again at each solution (not after each reducer iteration)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "xcover: %v\n", err)
		return 1
	}
	return 0
}

func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

func runXcover(f flags, inputPath string, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	in := stdin
	if inputPath != "" {
		file, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		in = file
	}

	lat := lattice.New()
	var parseErr error
	if f.numeric {
		parseErr = format.ParseNumeric(in, lat)
	} else {
		parseErr = format.ParseDense(in, lat)
	}
	if parseErr != nil {
		return fmt.Errorf("parsing input: %w", parseErr)
	}

	var opts []engine.Option
	opts = append(opts, engine.WithLogger(log))
	opts = append(opts, engine.WithNoReduce(f.noReduce))
	opts = append(opts, engine.WithOnlyReduce(f.onlyReduce))

	var reduceOpts []reduce.Option
	reduceOpts = append(reduceOpts, reduce.WithReduceTries(f.reduceTries))
	if f.reduceGroups {
		reduceOpts = append(reduceOpts, reduce.WithReduceGroups(true))
	}
	opts = append(opts, engine.WithReduceOptions(reduceOpts...))

	sink := persist.NewSink(stdout, log)
	opts = append(opts, engine.WithSink(sink))

	if f.saveIntermediate {
		// reduced.ec is overwritten on every poll rather than alternated,
		// matching the original tool's single-file -save_intermediate
		// output; persist.WithPeriod(0) makes every Engine poll write
		// immediately instead of waiting out Backup's default cadence.
		// The encoding mirrors whichever input format this run used.
		encoding := persist.Dense
		if f.numeric {
			encoding = persist.Numeric
		}
		backup := persist.New(lat,
			persist.WithEncoding(encoding),
			persist.WithPeriod(0),
			persist.WithPaths("reduced.ec", "reduced.ec"),
			persist.WithLogger(log))
		opts = append(opts, engine.WithBackup(backup))
	}

	eng := engine.New(lat, opts...)
	result, err := eng.Run()
	if err != nil {
		return fmt.Errorf("running: %w", err)
	}

	if result.Infeasible {
		fmt.Fprintln(stdout, "InstanceInfeasible")
		return nil
	}

	if f.onlyReduce {
		snap := format.BuildSnapshot(lat)
		return format.WriteNumeric(stdout, snap)
	}

	return nil
}
