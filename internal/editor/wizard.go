package editor

import (
	"github.com/isaacphi/forge/internal/domain"
)

// wizard returns the open session if it is in wizard mode
func (c *Controller) wizard() (*Session, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	if s.Mode != ModeWizard {
		return nil, domain.NewValidationError("mode", "switch to the wizard to edit fields")
	}
	return s, nil
}

func (c *Controller) SetName(name string) error {
	s, err := c.wizard()
	if err != nil {
		return err
	}
	s.Tool.Name = name
	s.Dirty = true
	return nil
}

func (c *Controller) SetDescription(description string) error {
	s, err := c.wizard()
	if err != nil {
		return err
	}
	s.Tool.Description = description
	s.Dirty = true
	return nil
}

// AddProperty adds a new property from the form. Names must be unique.
func (c *Controller) AddProperty(form PropertyForm) error {
	s, err := c.wizard()
	if err != nil {
		return err
	}
	prop, err := form.Property()
	if err != nil {
		return err
	}
	if _, exists := s.Tool.Parameters.Properties[prop.Name]; exists {
		return domain.NewValidationError("name", "property %q already exists", prop.Name)
	}
	s.Tool.Parameters.AddProperty(prop.Name, prop)
	s.Dirty = true
	return nil
}

// EditProperty replaces the property called oldName, renaming it when the
// form carries a different name.
func (c *Controller) EditProperty(oldName string, form PropertyForm) error {
	s, err := c.wizard()
	if err != nil {
		return err
	}
	if _, exists := s.Tool.Parameters.Properties[oldName]; !exists {
		return domain.NotFoundError{Kind: "property", ID: oldName}
	}
	prop, err := form.Property()
	if err != nil {
		return err
	}

	params := s.Tool.Parameters.Clone()
	if prop.Name != oldName {
		if err := params.RenameProperty(oldName, prop.Name); err != nil {
			return err
		}
	}
	params.AddProperty(prop.Name, prop)

	s.Tool.Parameters = params
	s.Dirty = true
	return nil
}

func (c *Controller) DeleteProperty(name string) error {
	s, err := c.wizard()
	if err != nil {
		return err
	}
	if !s.Tool.Parameters.RemoveProperty(name) {
		return domain.NotFoundError{Kind: "property", ID: name}
	}
	s.Dirty = true
	return nil
}

// ToggleRequired flips whether name is required and returns the new value
func (c *Controller) ToggleRequired(name string) (bool, error) {
	s, err := c.wizard()
	if err != nil {
		return false, err
	}
	required := !s.Tool.Parameters.IsRequired(name)
	if err := s.Tool.Parameters.SetRequired(name, required); err != nil {
		return false, err
	}
	s.Dirty = true
	return required, nil
}
