package urls

import (
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-localize/internal/registry"
)

// LocaleGroupPaths maps every non-default registry locale to its dotted group
// path under root, e.g. "site.es". The default locale stays on the root group.
func LocaleGroupPaths(reg *registry.Registry, root string) map[string]string {
	if reg == nil {
		return nil
	}
	if root == "" {
		root = DefaultGroupName
	}
	paths := make(map[string]string, reg.Len())
	for _, locale := range reg.Locales() {
		if reg.IsDefault(locale.Code) {
			continue
		}
		paths[locale.Code] = root + "." + locale.Code
	}
	return paths
}

// RouteConfig assembles a go-urlkit configuration with the layout the builder
// expects: one root group carrying the default-locale route templates, plus
// one child group per non-default registry locale mounted at "/<code>".
// Per-locale template overrides (e.g. translated path segments) come from
// localized; routes missing an override reuse the default template.
func RouteConfig(baseURL string, reg *registry.Registry, routes map[string]string, localized map[string]map[string]string) *urlkit.Config {
	root := urlkit.GroupConfig{
		Name:    DefaultGroupName,
		BaseURL: baseURL,
		Paths:   routes,
	}

	if reg != nil {
		for _, locale := range reg.Locales() {
			if reg.IsDefault(locale.Code) {
				continue
			}
			paths := make(map[string]string, len(routes))
			for name, template := range routes {
				paths[name] = template
			}
			for name, template := range localized[locale.Code] {
				paths[name] = template
			}
			root.Groups = append(root.Groups, urlkit.GroupConfig{
				Name:  locale.Code,
				Path:  "/" + locale.Code,
				Paths: paths,
			})
		}
	}

	return &urlkit.Config{Groups: []urlkit.GroupConfig{root}}
}
