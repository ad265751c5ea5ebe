package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// ClientService handles client-related operations
type ClientService struct {
	clients repository.Accessor[entity.Client]
}

// NewClientService creates a new client service
func NewClientService(clients repository.Accessor[entity.Client]) *ClientService {
	return &ClientService{clients: clients}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name    string
	Company *string
	Email   *string
	Phone   *string
	Address *string
	Type    enum.ClientType
	Status  enum.ClientStatus
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, caller *identity.Caller, input *CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Type:    input.Type,
		Status:  input.Status,
	}
	if client.Type == "" {
		client.Type = enum.ClientTypeBusiness
	}
	if client.Status == "" {
		client.Status = enum.ClientStatusActive
	}
	if !client.Type.IsValid() || !client.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid client type or status")
	}

	if err := s.clients.For(caller).Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, caller *identity.Caller, id uuid.UUID) (*entity.Client, error) {
	return s.clients.For(caller).Get(ctx, id)
}

// ListClients lists the caller's clients
func (s *ClientService) ListClients(ctx context.Context, caller *identity.Caller, opts repository.ListOptions) ([]entity.Client, error) {
	return s.clients.For(caller).List(ctx, opts)
}

// UpdateClientInput represents the update client input. Nil fields are left
// as stored.
type UpdateClientInput struct {
	ID      uuid.UUID
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Address *string
	Type    *enum.ClientType
	Status  *enum.ClientStatus
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, caller *identity.Caller, input *UpdateClientInput) (*entity.Client, error) {
	clients := s.clients.For(caller)
	client, err := clients.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("name must not be empty")
		}
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid client type")
		}
		client.Type = *input.Type
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid client status")
		}
		client.Status = *input.Status
	}

	if err := clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, caller *identity.Caller, id uuid.UUID) error {
	return s.clients.For(caller).Delete(ctx, id)
}
