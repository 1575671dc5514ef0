package impl

import (
	"context"
	"slices"

	"addressable/config"
	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	"addressable/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OwnerRegistry knows which owner types may hold addresses and how to load them.
type OwnerRegistry struct {
	types     []entity.OwnerType
	resolvers map[entity.OwnerType]usecase.OwnerResolver
}

// OwnerRegistryParams holds dependencies for the registry, injected by Fx.
type OwnerRegistryParams struct {
	fx.In

	Config   *config.Config
	Bindings []usecase.OwnerBinding `group:"owner_resolvers"`
}

// NewOwnerRegistryFromConfig registers the configured owner types plus every bound resolver.
func NewOwnerRegistryFromConfig(params OwnerRegistryParams) *OwnerRegistry {
	types := make([]entity.OwnerType, 0, len(params.Config.Addresses.OwnerTypes))
	for _, raw := range params.Config.Addresses.OwnerTypes {
		types = append(types, entity.ParseOwnerType(raw))
	}

	return NewOwnerRegistry(types, params.Bindings...)
}

// NewOwnerRegistry builds a registry from explicit types and bindings.
func NewOwnerRegistry(types []entity.OwnerType, bindings ...usecase.OwnerBinding) *OwnerRegistry {
	registry := &OwnerRegistry{resolvers: make(map[entity.OwnerType]usecase.OwnerResolver)}

	for _, t := range types {
		registry.register(t)
	}
	for _, binding := range bindings {
		registry.register(binding.Type)
		if binding.Resolver != nil {
			registry.resolvers[binding.Type] = binding.Resolver
		}
	}

	return registry
}

func (r *OwnerRegistry) register(t entity.OwnerType) {
	if t != "" && !slices.Contains(r.types, t) {
		r.types = append(r.types, t)
	}
}

// Types returns the registered owner types in registration order.
func (r *OwnerRegistry) Types() []entity.OwnerType {
	return slices.Clone(r.types)
}

func (r *OwnerRegistry) IsRegistered(t entity.OwnerType) bool {
	return slices.Contains(r.types, t)
}

// Check rejects zero references and unregistered types.
func (r *OwnerRegistry) Check(owner entity.OwnerRef) error {
	if owner.IsZero() {
		return domainerrors.ErrInvalidOwner
	}
	if !r.IsRegistered(owner.Type) {
		return domainerrors.ErrUnknownOwnerType.WithDetails(owner.Type.String())
	}

	return nil
}

// Resolve loads the owner entity through its type's resolver.
func (r *OwnerRegistry) Resolve(ctx context.Context, owner entity.OwnerRef) (any, error) {
	if err := r.Check(owner); err != nil {
		return nil, err
	}

	resolver, ok := r.resolvers[owner.Type]
	if !ok {
		return nil, domainerrors.ErrUnknownOwnerType.WithDetails("no resolver for " + owner.Type.String())
	}

	entityValue, err := resolver.ResolveOwner(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve owner %s", owner)
	}

	return entityValue, nil
}
