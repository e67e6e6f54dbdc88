// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-settings-client/models"
	"github.com/charmbracelet/lipgloss"
)

// renderSchema prints the schema groups sorted by key, one line per item.
func (a *App) renderSchema(raw json.RawMessage) error {
	env, err := models.DecodeEnvelope(raw)
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	var groups map[string]models.SchemaGroup
	if err = env.DecodeData(&groups); err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	r := lipgloss.NewRenderer(a.out)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("212")).Width(32)
	hintStyle := r.NewStyle().Faint(true)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		group := groups[k]
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", group.Title, k)))
		b.WriteByte('\n')

		for _, item := range group.Items {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(item.Key))
			b.WriteString(item.Label)
			b.WriteString(" ")
			b.WriteString(hintStyle.Render(itemHint(item)))
			b.WriteByte('\n')
		}
	}

	_, err = fmt.Fprint(a.out, b.String())
	return err
}

func itemHint(item models.SchemaItem) string {
	parts := []string{item.Type}
	if item.Default != "" {
		parts = append(parts, "default "+item.Default)
	}
	if len(item.Options) > 0 {
		parts = append(parts, "one of "+strings.Join(item.Options, "|"))
	}
	if !item.IsRequired() {
		parts = append(parts, "optional")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
