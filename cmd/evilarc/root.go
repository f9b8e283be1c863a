package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/mholt/evilarc"
)

type options struct {
	outputFile string
	depth      int
	platform   string
	path       string
	verbose    bool
}

func newRootCmd(version string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "evilarc [options] <input file>",
		Short:   "Create archive containing a file with directory traversal",
		Long:    longHelp,
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &evilarc.Error{
					Kind: evilarc.ArgumentError,
					Err:  fmt.Errorf("expected exactly one input file, got %d", len(args)),
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &evilarc.Error{Kind: evilarc.ArgumentError, Err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputFile, "output-file", "f", evilarc.DefaultOutputFile,
		"File to output archive to. Archive type is based off of file extension.")
	flags.IntVarP(&opts.depth, "depth", "d", evilarc.DefaultDepth, "Number directories to traverse.")
	flags.StringVarP(&opts.platform, "os", "o", evilarc.DefaultPlatform.String(), "OS platform for archive (win|unix).")
	flags.StringVarP(&opts.path, "path", "p", "", `Path to include in filename after traversal. Ex: WINDOWS\System32\`)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr.")

	return cmd
}

func run(cmd *cobra.Command, opts options, inputFile string) error {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	infof := func(format string, v ...interface{}) {
		if opts.verbose {
			logger.Printf("[INFO] "+format, v...)
		}
	}

	platform, ok := evilarc.ParsePlatform(opts.platform)
	if !ok {
		logger.Printf("[WARNING] unrecognized os %q; using %s", opts.platform, platform)
	}

	req := evilarc.Request{
		InputFile:  inputFile,
		OutputFile: opts.outputFile,
		Platform:   platform,
		Depth:      opts.depth,
		Path:       opts.path,
	}
	infof("creating %s containing %s", req.OutputFile, req.MemberPath())

	result, err := evilarc.Build(cmd.Context(), req)
	if err != nil {
		return err
	}
	infof("wrote %s archive", result.Format)

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result evilarc.Result) {
	fmt.Fprintf(w, "Wrote %s containing %s\n", result.OutputFile, result.MemberPath)
}

const longHelp = `Create archive containing a file with directory traversal.

The archive format is determined by the output file's extension:
  .zip .jar .war .ear        zip
  .tar                       tar
  .gz .tgz                   tar.gz
  .bz2 .tbz2                 tar.bz2
  .xz .txz                   tar.xz
  .lz4 .tlz4                 tar.lz4
  .zst .tzst                 tar.zst
  .sz .tsz                   tar.sz
  .br                        tar.br
  .lz                        tar.lz

If the output file exists, zip and tar archives are appended to;
compressed tar archives are overwritten.`
