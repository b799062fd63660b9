package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crillab/gopherpla/cover"
	"github.com/crillab/gopherpla/espresso"
	"github.com/crillab/gopherpla/pla"
)

// parseAll parses the given PLA files, at most jobs at a time.
// Documents are returned in the order of paths.
func parseAll(ctx context.Context, paths []string, jobs int) ([]*pla.Document, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	docs := make([]*pla.Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := openInput(path)
			if err != nil {
				return err
			}
			defer r.Close()
			doc, err := pla.Parse(r)
			if err != nil {
				return fmt.Errorf("could not parse %q: %w", path, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func newFmtCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file.pla...]",
		Short: "Check PLA files and write them back in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := parseAll(cmd.Context(), args, opts.cfg.Jobs)
			if err != nil {
				return err
			}
			for _, doc := range docs {
				if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.jobs, "jobs", 4, "number of files read concurrently")
	return cmd
}

func newMinimizeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimize [file.pla...]",
		Short: "Minimize PLA files with Espresso",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			docs, err := parseAll(cmd.Context(), args, opts.cfg.Jobs)
			if err != nil {
				return err
			}
			m := espresso.New(engine, espresso.WithLogger(opts.logger), espresso.WithVerify(opts.cfg.Verify))
			for i, doc := range docs {
				if err := minimizeDoc(cmd, opts, m, doc); err != nil {
					if len(args) > 0 {
						return fmt.Errorf("could not minimize %q: %w", args[i], err)
					}
					return fmt.Errorf("could not minimize cover: %w", err)
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.typ, "type", "fd", "cover type when a file declares none: f, r, fd, fr, dr or fdr")
	flags.BoolVar(&opts.verify, "verify", false, "check each result against its input")
	flags.BoolVar(&opts.verbose, "verbose", false, "write cube counts as comments before each result")
	flags.IntVar(&opts.jobs, "jobs", 4, "number of files read concurrently")
	return cmd
}

func minimizeDoc(cmd *cobra.Command, opts *options, m *espresso.Minimizer, doc *pla.Document) error {
	typ := doc.Type
	if typ == cover.None {
		var err error
		if typ, err = pla.ParseType(opts.cfg.Type); err != nil {
			return err
		}
	}
	res, err := m.Minimize(cmd.Context(), doc.Cover, typ)
	if err != nil {
		return err
	}
	defer res.Release()
	w := cmd.OutOrStdout()
	if opts.verbose {
		fmt.Fprintf(w, "# type %v, %d cubes in, %d cubes out\n", typ, doc.Cover.NbCubes(), res.NbCubes())
	}
	out := &pla.Document{
		Cover:        res,
		InputLabels:  doc.InputLabels,
		OutputLabels: doc.OutputLabels,
	}
	_, err = out.WriteTo(w)
	return err
}
