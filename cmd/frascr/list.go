package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frascr/frascr/algorithm"
	"github.com/frascr/frascr/reference"
	"github.com/frascr/frascr/writer"
)

func newIlluminantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "illuminants",
		Short: "List reference illuminants with their white points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := message.NewPrinter(language.English)
			w := cmd.OutOrStdout()
			p.Fprintf(w, "%-10s %-8s %-8s %-8s %-7s %-7s %s\n", "NAME", "X", "Y", "Z", "x", "y", "DISPLAY")
			for _, t := range reference.Known() {
				v, err := reference.Values(t)
				if err != nil {
					return err
				}
				id, err := reference.DisplayMatrixID(t)
				if err != nil {
					return err
				}
				p.Fprintf(w, "%-10s %-8.5f %-8.5f %-8.5f %-7.5f %-7.5f %v\n", t,
					v.White.X, v.White.Y, v.White.Z, v.White.Chroma.X, v.White.Chroma.Y, id)
			}
			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the built-in escape-time algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printNames(cmd, algorithm.Names())
		},
	}
}

func newWritersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "writers",
		Short: "List the built-in output writers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printNames(cmd, writer.Names())
		},
	}
}

func printNames(cmd *cobra.Command, names []string) {
	p := message.NewPrinter(language.English)
	for _, n := range names {
		p.Fprintln(cmd.OutOrStdout(), n)
	}
	p.Fprintf(cmd.OutOrStdout(), "%d available\n", len(names))
}
