package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/pkg/skins"
)

const tablePadding = 2

var stylesJSON bool

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().BoolVar(&stylesJSON, "json", false, "output as JSON")
}

type styleRow struct {
	Kind        skins.Kind  `json:"kind"`
	ID          skins.Style `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Default     bool        `json:"default"`
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List document and email styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var list []styleRow
		for _, kind := range []skins.Kind{skins.KindDocument, skins.KindEmail} {
			for _, s := range a.Skins.Skins(kind) {
				list = append(list, styleRow{
					Kind:        kind,
					ID:          s.Style,
					Name:        s.Name,
					Description: s.Description,
					Default:     s.Style == skins.DefaultDocument || s.Style == skins.DefaultEmail,
				})
			}
		}

		if stylesJSON {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{string(s.Kind), string(s.ID), s.Name, formatYesNo(s.Default), s.Description})
		}
		return writeTable(cmd.OutOrStdout(), []string{"KIND", "STYLE", "NAME", "DEFAULT", "DESCRIPTION"}, rows)
	},
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func formatYesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
