package browser

import (
	"fmt"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// RenderTool draws a read only summary of a tool
func RenderTool(tool domain.Tool, thm *theme.Theme) string {
	var b strings.Builder

	b.WriteString(thm.TitleStyle.Render(tool.Name))
	b.WriteString("\n")
	if tool.Description != "" {
		b.WriteString(tool.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	names := tool.Parameters.Names()
	if len(names) == 0 {
		b.WriteString(thm.LabelStyle.Render("No properties"))
		return b.String()
	}

	b.WriteString(thm.LabelStyle.Render("Properties"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(PropertyLine(name, tool.Parameters.Properties[name], tool.Parameters.IsRequired(name), thm))
		b.WriteString("\n")
		if desc := tool.Parameters.Properties[name].Description; desc != "" {
			b.WriteString("    " + desc + "\n")
		}
	}
	return b.String()
}

// PropertyLine formats one property as "name (type) *"
func PropertyLine(name string, prop domain.Property, required bool, thm *theme.Theme) string {
	typ := prop.Type
	if prop.Items != nil {
		typ = fmt.Sprintf("%s of %s", prop.Type, prop.Items.Type)
	}
	line := fmt.Sprintf("  %s (%s)", name, typ)
	if len(prop.Enum) > 0 {
		values := make([]string, len(prop.Enum))
		for i, v := range prop.Enum {
			values[i] = fmt.Sprint(v)
		}
		line += " [" + strings.Join(values, "|") + "]"
	}
	if required {
		line += " " + thm.RequiredStyle.Render("required")
	}
	return line
}
