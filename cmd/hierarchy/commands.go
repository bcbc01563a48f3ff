package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/hierarchy/records"
	"github.com/npillmayer/hierarchy/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type cliOptions struct {
	dataFile   string
	traceLevel string
}

// traced lists the tracer keys the --trace flag applies to.
var traced = []string{"hierarchy.tree", "hierarchy.records", "hierarchy.cli"}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:          "hierarchy",
		Short:        "Query a flat list of parent-referencing records as a tree",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(opts.traceLevel)
		},
	}
	root.PersistentFlags().StringVarP(&opts.dataFile, "data", "d", "", "YAML or JSON file with records (id, parent, value)")
	root.PersistentFlags().StringVar(&opts.traceLevel, "trace", "Error", "trace level: Error, Info or Debug")
	root.MarkPersistentFlagRequired("data")

	root.AddCommand(
		&cobra.Command{
			Use:   "root",
			Short: "Print the root node",
			Args:  cobra.NoArgs,
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], _ []string) error {
				node, err := t.GetRoot()
				if err != nil {
					return err
				}
				return printYAML(cmd, view(node))
			}),
		},
		&cobra.Command{
			Use:   "node ID",
			Short: "Print the node with a given id",
			Args:  cobra.ExactArgs(1),
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], args []string) error {
				node, err := t.GetNode(records.ParseID(args[0]))
				if err != nil {
					return err
				}
				return printYAML(cmd, view(node))
			}),
		},
		&cobra.Command{
			Use:   "parent ID",
			Short: "Print the parent of a node",
			Args:  cobra.ExactArgs(1),
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], args []string) error {
				node, err := t.GetParent(records.ParseID(args[0]))
				if err != nil {
					return err
				}
				return printYAML(cmd, view(node))
			}),
		},
		&cobra.Command{
			Use:   "children ID",
			Short: "Print the children of a node",
			Args:  cobra.ExactArgs(1),
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], args []string) error {
				children, err := t.GetChildren(records.ParseID(args[0]))
				if err != nil {
					return err
				}
				views := make([]nodeView, len(children))
				for i, ch := range children {
					views[i] = view(ch)
				}
				return printYAML(cmd, views)
			}),
		},
		&cobra.Command{
			Use:   "value ID",
			Short: "Print the value of a node",
			Args:  cobra.ExactArgs(1),
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], args []string) error {
				v, err := t.GetNodeValue(records.ParseID(args[0]))
				if err != nil {
					return err
				}
				return printYAML(cmd, v.WithDefault(nil))
			}),
		},
		&cobra.Command{
			Use:   "print",
			Short: "Print the whole hierarchy",
			Args:  cobra.NoArgs,
			RunE: withTree(opts, func(cmd *cobra.Command, t *tree.Tree[any, any], _ []string) error {
				fmt.Fprint(cmd.OutOrStdout(), t.String())
				return nil
			}),
		},
	)
	return root
}

type treeRunner func(*cobra.Command, *tree.Tree[any, any], []string) error

// withTree loads the data file into a fresh tree before running a query.
func withTree(opts *cliOptions, run treeRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, err := records.Load(opts.dataFile)
		if err != nil {
			return err
		}
		t := tree.New[any, any](tree.WithOutput(cmd.OutOrStdout()))
		if err := t.SetData(data); err != nil {
			return fmt.Errorf("%s: %w", opts.dataFile, err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		tracer().Debugf("running %q with %d nodes", cmd.Name(), t.Len())
		return run(cmd, t, args)
	}
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range traced {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// nodeView is the printed form of a node.
type nodeView struct {
	ID     any `yaml:"id"`
	Parent any `yaml:"parent"`
	Value  any `yaml:"value"`
}

func view(node *tree.Node[any, any]) nodeView {
	return nodeView{
		ID:     node.ID(),
		Parent: node.Parent().WithDefault(nil),
		Value:  node.Value().WithDefault(nil),
	}
}

func printYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
