package shipping

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/abdiesu04/nexus/internal/address"
	"github.com/abdiesu04/nexus/internal/carrier"
	"github.com/abdiesu04/nexus/internal/repository"
)

// Address management: owners maintain their own address books. A new or
// changed address is verified against the carrier service before it is
// stored; residential delivery addresses are accepted without a strict
// check.

func (s *Service) CreateSellerAddress(ctx context.Context, actor Actor, addr *repository.SellerAddress) error {
	if actor.Role != RoleSeller && actor.Role != RoleAdmin {
		return permissionError("only sellers can create pickup addresses")
	}
	addr.SellerID = actor.ID

	cleanSellerAddress(addr)
	if err := checkAddressFields(addr.Name, addr.Street1, addr.City, addr.State, addr.Zip, addr.Phone); err != nil {
		return err
	}

	validation, err := s.verifyAddress(ctx, sellerToAddress(addr))
	if err != nil {
		return err
	}
	if !validation.IsValid {
		return &Error{Kind: KindValidation, Message: "address failed validation", Messages: validation.Messages}
	}
	addr.IsVerified = true

	if err := s.sellerAddrs.Create(ctx, addr); err != nil {
		return internalError("failed to create seller address", err)
	}
	return nil
}

func (s *Service) ListSellerAddresses(ctx context.Context, actor Actor) ([]*repository.SellerAddress, error) {
	addrs, err := s.sellerAddrs.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, internalError("failed to list seller addresses", err)
	}
	return addrs, nil
}

func (s *Service) GetSellerAddress(ctx context.Context, actor Actor, id uuid.UUID) (*repository.SellerAddress, error) {
	addr, err := s.sellerAddrs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("address %s not found", id)
		}
		return nil, internalError("failed to load seller address", err)
	}
	if addr.SellerID != actor.ID && !actor.IsAdmin() {
		return nil, notFoundError("address %s not found", id)
	}
	return addr, nil
}

func (s *Service) UpdateSellerAddress(ctx context.Context, actor Actor, addr *repository.SellerAddress) error {
	addr.SellerID = actor.ID

	cleanSellerAddress(addr)
	if err := checkAddressFields(addr.Name, addr.Street1, addr.City, addr.State, addr.Zip, addr.Phone); err != nil {
		return err
	}

	validation, err := s.verifyAddress(ctx, sellerToAddress(addr))
	if err != nil {
		return err
	}
	if !validation.IsValid {
		return &Error{Kind: KindValidation, Message: "address failed validation", Messages: validation.Messages}
	}
	addr.IsVerified = true

	if err := s.sellerAddrs.Update(ctx, addr); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", addr.ID)
		}
		return internalError("failed to update seller address", err)
	}
	return nil
}

func (s *Service) DeleteSellerAddress(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.sellerAddrs.Delete(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", id)
		}
		return internalError("failed to delete seller address", err)
	}
	return nil
}

func (s *Service) SetDefaultSellerAddress(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.sellerAddrs.SetDefault(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", id)
		}
		return internalError("failed to set default seller address", err)
	}
	return nil
}

// ValidateSellerAddress re-checks a stored address against the carrier
// service on demand and records a successful verification.
func (s *Service) ValidateSellerAddress(ctx context.Context, actor Actor, id uuid.UUID) (carrier.Validation, error) {
	addr, err := s.GetSellerAddress(ctx, actor, id)
	if err != nil {
		return carrier.Validation{}, err
	}

	validation, err := s.verifyAddress(ctx, sellerToAddress(addr))
	if err != nil {
		return carrier.Validation{}, err
	}
	if validation.IsValid && !addr.IsVerified {
		if err := s.sellerAddrs.MarkVerified(ctx, addr.ID); err != nil {
			return carrier.Validation{}, internalError("failed to mark address verified", err)
		}
	}
	return validation, nil
}

func (s *Service) CreateBuyerAddress(ctx context.Context, actor Actor, addr *repository.BuyerAddress) error {
	if actor.Role != RoleBuyer && actor.Role != RoleAdmin {
		return permissionError("only buyers can create delivery addresses")
	}
	addr.BuyerID = actor.ID

	cleanBuyerAddress(addr)
	if err := checkAddressFields(addr.Name, addr.Street1, addr.City, addr.State, addr.Zip, addr.Phone); err != nil {
		return err
	}

	validation, err := s.verifyAddress(ctx, buyerToAddress(addr))
	if err != nil {
		return err
	}
	if !validation.IsValid {
		return &Error{Kind: KindValidation, Message: "address failed validation", Messages: validation.Messages}
	}
	addr.IsVerified = true

	if err := s.buyerAddrs.Create(ctx, addr); err != nil {
		return internalError("failed to create buyer address", err)
	}
	return nil
}

func (s *Service) ListBuyerAddresses(ctx context.Context, actor Actor) ([]*repository.BuyerAddress, error) {
	addrs, err := s.buyerAddrs.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, internalError("failed to list buyer addresses", err)
	}
	return addrs, nil
}

func (s *Service) GetBuyerAddress(ctx context.Context, actor Actor, id uuid.UUID) (*repository.BuyerAddress, error) {
	addr, err := s.buyerAddrs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("address %s not found", id)
		}
		return nil, internalError("failed to load buyer address", err)
	}
	if addr.BuyerID != actor.ID && !actor.IsAdmin() {
		return nil, notFoundError("address %s not found", id)
	}
	return addr, nil
}

func (s *Service) UpdateBuyerAddress(ctx context.Context, actor Actor, addr *repository.BuyerAddress) error {
	addr.BuyerID = actor.ID

	cleanBuyerAddress(addr)
	if err := checkAddressFields(addr.Name, addr.Street1, addr.City, addr.State, addr.Zip, addr.Phone); err != nil {
		return err
	}

	validation, err := s.verifyAddress(ctx, buyerToAddress(addr))
	if err != nil {
		return err
	}
	if !validation.IsValid {
		return &Error{Kind: KindValidation, Message: "address failed validation", Messages: validation.Messages}
	}
	addr.IsVerified = true

	if err := s.buyerAddrs.Update(ctx, addr); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", addr.ID)
		}
		return internalError("failed to update buyer address", err)
	}
	return nil
}

func (s *Service) DeleteBuyerAddress(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.buyerAddrs.Delete(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", id)
		}
		return internalError("failed to delete buyer address", err)
	}
	return nil
}

func (s *Service) SetDefaultBuyerAddress(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.buyerAddrs.SetDefault(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return notFoundError("address %s not found", id)
		}
		return internalError("failed to set default buyer address", err)
	}
	return nil
}

func (s *Service) ValidateBuyerAddress(ctx context.Context, actor Actor, id uuid.UUID) (carrier.Validation, error) {
	addr, err := s.GetBuyerAddress(ctx, actor, id)
	if err != nil {
		return carrier.Validation{}, err
	}

	validation, err := s.verifyAddress(ctx, buyerToAddress(addr))
	if err != nil {
		return carrier.Validation{}, err
	}
	if validation.IsValid && !addr.IsVerified {
		if err := s.buyerAddrs.MarkVerified(ctx, addr.ID); err != nil {
			return carrier.Validation{}, internalError("failed to mark address verified", err)
		}
	}
	return validation, nil
}

// verifyAddress registers the normalized address with the carrier service
// and checks it. Residential addresses are accepted with an informational
// message; a failure of the validation call itself is treated leniently,
// because the strict pass happens again inside the quoting sequence.
func (s *Service) verifyAddress(ctx context.Context, addr address.Address) (carrier.Validation, error) {
	normalized := address.Normalize(addr)

	ref, err := s.client.CreateAddress(ctx, normalized)
	if err != nil {
		return carrier.Validation{}, remoteError("create address", err)
	}

	if normalized.Residential {
		return carrier.Validation{
			IsValid:  true,
			Messages: []string{"Address accepted as residential - validation skipped"},
		}, nil
	}

	validation, err := s.client.ValidateAddress(ctx, ref)
	if err != nil {
		s.logger.Warn("Address validation failed, accepting address anyway")
		return carrier.Validation{
			IsValid:  true,
			Messages: []string{"Address accepted despite validation error"},
		}, nil
	}
	return validation, nil
}

func cleanSellerAddress(addr *repository.SellerAddress) {
	addr.Phone = digitsOnly(addr.Phone)
	addr.Country = strings.ToUpper(strings.TrimSpace(addr.Country))
}

func cleanBuyerAddress(addr *repository.BuyerAddress) {
	addr.Phone = digitsOnly(addr.Phone)
	addr.Country = strings.ToUpper(strings.TrimSpace(addr.Country))
}

func checkAddressFields(name, street1, city, state, zip, phone string) error {
	required := map[string]string{
		"name":    name,
		"street1": street1,
		"city":    city,
		"state":   state,
		"zip":     zip,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return validationError("%s cannot be empty", field)
		}
	}
	if len(phone) < 10 {
		return validationError("phone number must have at least 10 digits")
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
