package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	GK "github.com/intel/forGKlibGo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	descending      bool
	symmetric       bool
	removeSelfEdges bool
	json            bool
	top             int
	samples         int
	seed            uint64
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.descending, "descending", false, "list nodes by decreasing degree")
	fs.BoolVar(&o.symmetric, "symmetric", false, "add the reverse of every directed edge")
	fs.BoolVar(&o.removeSelfEdges, "remove-self-edges", true, "drop edges from a node to itself")
	fs.BoolVar(&o.json, "json", false, "log in JSON")
	fs.IntVar(&o.top, "top", 10, "number of nodes to list in degree order")
	fs.IntVar(&o.samples, "samples", 64, "number of nodes sampled for the degree estimate")
	fs.Uint64Var(&o.seed, "seed", 42, "seed of the degree sampler")
}

func (o *options) newLogger() (*zap.Logger, error) {
	if o.json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "sortedges <file.mtx>",
		Short: "Sort the edges of a Matrix Market graph and order its nodes by degree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := o.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cmd, logger, &o, args[0])
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, logger *zap.Logger, o *options, filename string) error {
	G, err := GK.ReadProblem[int64](logger, filename, o.symmetric, o.removeSelfEdges)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v graph: %v nodes, %v edges, %v self edges\n",
		G.Kind, humanize.Comma(int64(G.N)), humanize.Comma(int64(G.NEdges())), G.NSelfEdges)

	P := G.SortByDegree(!o.descending)
	top := min(o.top, len(P))
	for _, node := range P[:top] {
		fmt.Fprintf(out, "node %v degree %v\n", node+1, G.RowDegree[node])
	}

	mean, median := G.SampleDegree(o.samples, o.seed)
	fmt.Fprintf(out, "sampled degree: mean %.2f median %.0f\n", mean, median)
	return nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
