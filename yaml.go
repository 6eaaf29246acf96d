package fixturekit

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// TemplatesFromYAML parses a YAML document mapping preset names to templates.
// Template values are constants only; factories cannot be expressed in YAML.
//
//	admin:
//	  role: admin
//	  active: true
//	member:
//	  role: member
//
// The function performs no file I/O; callers read the bytes themselves.
func TemplatesFromYAML(data []byte) (map[string]Template, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformedTemplates, err)
	}
	templates := make(map[string]Template, len(doc))
	for name, tpl := range doc {
		templates[name] = Template(tpl)
	}
	return templates, nil
}

// DefineYAML parses data with TemplatesFromYAML and defines every entry,
// replacing presets already registered under the same names.
func (r *Registry) DefineYAML(data []byte) error {
	templates, err := TemplatesFromYAML(data)
	if err != nil {
		return err
	}
	for name, tpl := range templates {
		r.Define(name, tpl)
	}
	return nil
}

// DefinePresetsYAML defines every preset in data on DefaultRegistry.
func DefinePresetsYAML(data []byte) error {
	return DefaultRegistry.DefineYAML(data)
}
