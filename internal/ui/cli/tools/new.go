package tools

import (
	"fmt"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a tool specification",
	Long: `Create a tool specification without opening the editor.

Properties are given as name:type[:required][:description], for example
  forge tools new get_weather -d "Current weather" -p location:string:required:City -p unit:string`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		tool := domain.NewTool(args[0], descriptionFlag)
		for _, spec := range propFlags {
			form, err := parsePropFlag(spec)
			if err != nil {
				return err
			}
			prop, err := form.Property()
			if err != nil {
				return err
			}
			if _, exists := tool.Parameters.Properties[prop.Name]; exists {
				return domain.NewValidationError("name", "property %q given twice", prop.Name)
			}
			tool.Parameters.AddProperty(prop.Name, prop)
		}

		filename := filenameFlag
		if filename == "" {
			filename = tool.Name
		}

		saved, err := svc.Create(cmd.Context(), folderFlag, filename, tool)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s at %s\n", saved.ID, saved.Path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "What the tool does")
	newCmd.Flags().StringVar(&folderFlag, "folder", "", "Existing folder to save into (default: the tools directory itself)")
	newCmd.Flags().StringVar(&filenameFlag, "filename", "", "File name (default: the tool name)")
	newCmd.Flags().StringArrayVarP(&propFlags, "prop", "p", nil, "Property as name:type[:required][:description]")
}

// parsePropFlag reads name:type[:required][:description]. The description
// may itself contain colons.
func parsePropFlag(spec string) (editor.PropertyForm, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 2 {
		return editor.PropertyForm{}, domain.NewValidationError("prop", "property %q must look like name:type", spec)
	}

	form := editor.PropertyForm{Name: parts[0], Type: parts[1]}
	rest := parts[2:]
	if len(rest) > 0 && strings.EqualFold(rest[0], "required") {
		form.Required = true
		rest = rest[1:]
	}
	if len(rest) > 0 {
		form.Description = strings.Join(rest, ":")
	}
	return form, nil
}
