// Package config provides the YAML route-table loader and the versioned
// descriptor source for gate.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads a route table from the given path and returns the descriptors
// it defines, ordered by action name.
func Load(path string) ([]*domain.ActionDescriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read route table")
	}

	var gatefile Gatefile
	if err := yaml.Unmarshal(data, &gatefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse route table")
	}

	return buildDescriptors(&gatefile)
}

// buildDescriptors converts the parsed file into immutable descriptors.
// Actions are sorted by name so snapshot order and IDs are deterministic
// regardless of map iteration order.
func buildDescriptors(gatefile *Gatefile) ([]*domain.ActionDescriptor, error) {
	names := make([]string, 0, len(gatefile.Actions))
	for name := range gatefile.Actions {
		names = append(names, name)
	}
	slices.Sort(names)

	descriptors := make([]*domain.ActionDescriptor, 0, len(names))
	for _, name := range names {
		dto := gatefile.Actions[name]

		desc, err := buildDescriptor(name, dto, gatefile.Defaults)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}

func buildDescriptor(name string, dto ActionDTO, defaults DefaultsDTO) (*domain.ActionDescriptor, error) {
	metadata := make([]any, 0, len(dto.Constraints)+1)
	if len(dto.Methods) > 0 {
		metadata = append(metadata, &MethodConstraint{Methods: slices.Clone(dto.Methods)})
	}
	for _, cdto := range dto.Constraints {
		m, err := buildConstraintMetadata(name, cdto)
		if err != nil {
			return nil, err
		}
		metadata = append(metadata, m)
	}

	// Form-limit policies stack outermost first: file defaults, then the
	// action's own entry.
	var limits []domain.FormLimits
	for _, l := range []*FormLimitsDTO{defaults.FormLimits, dto.FormLimits} {
		if l != nil {
			limits = append(limits, domain.FormLimits{
				MaxRequestBodySize: l.MaxBodySize,
				MaxValueCount:      l.MaxValueCount,
			})
		}
	}

	return &domain.ActionDescriptor{
		ID:                 descriptorID(name, dto),
		Name:               domain.NewInternedString(name),
		RouteValues:        dto.RouteValues,
		ConstraintMetadata: metadata,
		FormLimits:         limits,
	}, nil
}

// buildConstraintMetadata maps one DTO to a raw metadata entry. Entries
// default to reusable; `reusable: false` wraps the same constraint in a
// per-request factory so it is rebuilt on every lookup.
func buildConstraintMetadata(action string, dto ConstraintDTO) (any, error) {
	reusable := dto.Reusable == nil || *dto.Reusable

	switch dto.Kind {
	case "method":
		methods := strings.Split(dto.Value, ",")
		for i := range methods {
			methods[i] = strings.TrimSpace(methods[i])
		}
		if reusable {
			return &MethodConstraint{Methods: methods}, nil
		}
		return &PerRequestFactory{
			Build: func(_ *domain.RequestContext) domain.Constraint {
				return &MethodConstraint{Methods: methods}
			},
		}, nil

	case "header":
		if reusable {
			return &HeaderConstraint{Name: dto.Name, Value: dto.Value}, nil
		}
		return &PerRequestFactory{
			Build: func(_ *domain.RequestContext) domain.Constraint {
				return &HeaderConstraint{Name: dto.Name, Value: dto.Value}
			},
		}, nil

	default:
		return nil, zerr.With(zerr.With(domain.ErrUnknownConstraintKind, "kind", dto.Kind), "action", action)
	}
}

// descriptorID derives a stable identifier from the canonical definition.
func descriptorID(name string, dto ActionDTO) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(name)
	_, _ = hasher.Write([]byte{0}) // Separator

	keys := make([]string, 0, len(dto.RouteValues))
	for k := range dto.RouteValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(dto.RouteValues[k])
		_, _ = hasher.Write([]byte{0})
	}

	for _, m := range dto.Methods {
		_, _ = hasher.WriteString(m)
		_, _ = hasher.Write([]byte{0})
	}

	for _, c := range dto.Constraints {
		_, _ = hasher.WriteString(c.Kind)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(c.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(c.Value)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
