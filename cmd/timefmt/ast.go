// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/timefmt"
)

var ErrUnknownOutputFormat = errors.New("unknown output format")

var astOutput string

var astCmd = &cobra.Command{
	Use:   "ast DESCRIPTION",
	Short: "Print the syntax tree of a format description",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

type (
	// astNode is the serializable form of an Item.
	astNode struct {
		Kind      string         `yaml:"kind" json:"kind"`
		Span      string         `yaml:"span" json:"span"`
		Value     string         `yaml:"value,omitempty" json:"value,omitempty"`
		Modifiers []modifierNode `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
		Items     []astNode      `yaml:"items,omitempty" json:"items,omitempty"`
	}

	modifierNode struct {
		Key   string `yaml:"key" json:"key"`
		Value string `yaml:"value" json:"value"`
		Span  string `yaml:"span" json:"span"`
	}
)

func init() {
	astCmd.Flags().StringVarP(&astOutput, "output", "o", "yaml", "Output format: yaml, json or spew")
}

func runAST(cmd *cobra.Command, args []string) (err error) {
	src := []byte(args[0])

	items, err := timefmt.Parse(src, libOptions()...)
	if err != nil {
		newStyles(colorEnabled(cfg.Color, cmd.ErrOrStderr())).renderError(cmd.ErrOrStderr(), src, err)
		return
	}

	out := cmd.OutOrStdout()
	switch astOutput {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err = enc.Encode(toNodes(items)); err != nil {
			return
		}
		err = enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(toNodes(items))
	case "spew":
		spew.Fdump(out, items)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOutputFormat, astOutput)
	}

	return
}

func toNodes(items []timefmt.Item) []astNode {
	nodes := make([]astNode, 0, len(items))

	for _, item := range items {
		node := astNode{Span: item.Span().String()}

		switch item := item.(type) {
		case *timefmt.Literal:
			node.Kind, node.Value = "literal", item.Value.Value.String()
		case *timefmt.EscapedBracket:
			node.Kind, node.Value = "escaped_bracket", item.Kind.String()
		case *timefmt.Component:
			node.Kind, node.Value = "component", item.Name.Value.String()
			for _, m := range item.Modifiers {
				node.Modifiers = append(node.Modifiers, modifierNode{
					Key:   m.Key.Value.String(),
					Value: m.Value.Value.String(),
					Span:  m.Key.Span.Start.To(m.Value.Span.End).String(),
				})
			}
		case *timefmt.Optional:
			node.Kind, node.Items = "optional", toNodes(item.Nested.Items)
		}

		nodes = append(nodes, node)
	}

	return nodes
}
