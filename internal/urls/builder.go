package urls

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// DefaultGroupName is the root route group used when callers do not supply one.
const DefaultGroupName = "site"

var (
	// ErrManagerRequired indicates the builder has no route manager wired.
	ErrManagerRequired = errors.New("urls: route manager is required")
	// ErrRegistryRequired indicates the builder has no locale registry wired.
	ErrRegistryRequired = errors.New("urls: locale registry is required")
	// ErrRouteRequired rejects empty route names.
	ErrRouteRequired = errors.New("urls: route name is required")
)

// Params carries route parameters (e.g. slug) into path building.
type Params map[string]any

// AlternateLink is one per-locale equivalent of a logical route, used for
// hreflang alternate-language declarations. Locale doubles as the hreflang
// value.
type AlternateLink struct {
	Locale string
	URL    string
}

// Options configures the go-urlkit backed path builder.
type Options struct {
	Manager  *urlkit.RouteManager
	Registry *registry.Registry
	// DefaultGroup is the root group serving the default locale.
	DefaultGroup string
	// LocaleGroups maps locale codes to dotted group paths, e.g. "site.es".
	// Locales without an entry fall back to the default group.
	LocaleGroups map[string]string
	Logger       interfaces.Logger
}

// Builder produces locale-prefixed paths for logical routes. The default
// locale builds against the root group (unprefixed), every other registry
// locale against its child group. Unsupported locale candidates resolve
// silently to the default, so path building is total over locale inputs.
type Builder struct {
	manager  *urlkit.RouteManager
	registry *registry.Registry
	logger   interfaces.Logger

	defaultGroup string
	localeGroups map[string]string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewBuilder constructs a path builder.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.Manager == nil {
		return nil, ErrManagerRequired
	}
	if opts.Registry == nil {
		return nil, ErrRegistryRequired
	}

	defaultGroup := strings.TrimSpace(opts.DefaultGroup)
	if defaultGroup == "" {
		defaultGroup = DefaultGroupName
	}

	localeGroups := opts.LocaleGroups
	if localeGroups == nil {
		localeGroups = LocaleGroupPaths(opts.Registry, defaultGroup)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Builder{
		manager:      opts.Manager,
		registry:     opts.Registry,
		logger:       logger,
		defaultGroup: defaultGroup,
		localeGroups: localeGroups,
		groupCache:   make(map[string]*urlkit.Group),
	}, nil
}

// Path builds the concrete URL for a logical route under the given locale.
// The locale candidate goes through registry resolution first, so unknown or
// malformed values build the default-locale path instead of failing.
func (b *Builder) Path(route, locale string, params Params) (string, error) {
	if b == nil || b.manager == nil {
		return "", ErrManagerRequired
	}
	route = strings.TrimSpace(route)
	if route == "" {
		return "", ErrRouteRequired
	}

	resolved := b.registry.Resolve(locale)

	groupPath := b.defaultGroup
	if !b.registry.IsDefault(resolved.Code) {
		if path, ok := b.localeGroups[resolved.Code]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}

	group, err := b.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}

	return builder.Build()
}

// AlternateLinks builds one link per registry locale for a logical route, in
// registry order. Every registry locale appears exactly once.
func (b *Builder) AlternateLinks(route string, params Params) ([]AlternateLink, error) {
	if b == nil || b.registry == nil {
		return nil, ErrRegistryRequired
	}

	links := make([]AlternateLink, 0, b.registry.Len())
	for _, locale := range b.registry.Locales() {
		url, err := b.Path(route, locale.Code, params)
		if err != nil {
			return nil, fmt.Errorf("urls: alternate link for %q: %w", locale.Code, err)
		}
		links = append(links, AlternateLink{Locale: locale.Code, URL: url})
	}
	return links, nil
}

// LocaleFromPath resolves the locale a concrete path was built for by
// inspecting its first segment. Paths without a locale prefix resolve to the
// default locale, which makes default-locale paths round-trip.
func (b *Builder) LocaleFromPath(path string) registry.Locale {
	segment := ""
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		segment = trimmed[:idx]
	} else {
		segment = trimmed
	}
	if b.registry.IsDefault(segment) {
		// The default locale never carries a prefix, so a first segment that
		// happens to equal the default code is plain content.
		return b.registry.Default()
	}
	return b.registry.Resolve(segment)
}

func (b *Builder) groupForPath(path string) (*urlkit.Group, error) {
	b.mu.RLock()
	group, ok := b.groupCache[path]
	b.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(b.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	b.mu.Lock()
	b.groupCache[path] = current
	b.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("urls: route group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: route %q not found: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, ErrManagerRequired
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("urls: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
