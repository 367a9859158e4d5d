package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/psepay/pse_api/internal/models"
	"github.com/psepay/pse_api/internal/repository"
	"github.com/psepay/pse_api/internal/utils"
)

// BankRepository is the data access contract the service depends on.
// Lookups return (nil, nil) when no bank matches.
type BankRepository interface {
	List(ctx context.Context, filter repository.BankFilter) ([]models.Bank, error)
	GetByID(ctx context.Context, bankID int) (*models.Bank, error)
	GetByCode(ctx context.Context, bankCode string) (*models.Bank, error)
	Create(ctx context.Context, bank *models.Bank) error
	Update(ctx context.Context, bank *models.Bank) error
	Delete(ctx context.Context, bankID int) error
}

// BankService enforces the business rules for bank management: bank code
// uniqueness on create and existence checks before update and delete.
type BankService struct {
	repo BankRepository
}

// NewBankService constructs a BankService. The repository must not be nil.
func NewBankService(repo BankRepository) *BankService {
	if repo == nil {
		panic("service: nil BankRepository")
	}
	return &BankService{repo: repo}
}

// GetBanks returns banks mapped to the response shape. A bankID greater than
// zero filters to exactly that id; any other value returns all banks.
func (s *BankService) GetBanks(ctx context.Context, bankID int) (resp []models.BankResponse, err error) {
	defer s.guard("get banks", &err)

	var filter repository.BankFilter
	if bankID > 0 {
		filter.BankID = bankID
	}

	banks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]models.BankResponse, 0, len(banks))
	for _, b := range banks {
		resp = append(resp, models.BankResponse{
			BankID:      b.BankID,
			BankCode:    b.BankCode,
			BankName:    b.BankName,
			IsActive:    b.IsActive,
			APIURL:      b.APIURL,
			CreatedDate: b.CreatedDate,
		})
	}
	return resp, nil
}

// CreateBank creates a new bank after verifying the bank code is not taken.
// The id and creation timestamp are store-generated.
func (s *BankService) CreateBank(ctx context.Context, req *models.BankRequest) (msg string, err error) {
	defer s.guard("create bank", &err)

	current, err := s.repo.GetByCode(ctx, req.BankCode)
	if err != nil {
		return "", err
	}
	if current != nil {
		return "", utils.NewEntityAlreadyExists(req.BankCode)
	}

	bank := &models.Bank{
		BankCode: req.BankCode,
		BankName: req.BankName,
		IsActive: req.IsActive,
		APIURL:   req.APIURL,
	}
	if err := s.repo.Create(ctx, bank); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s created successfully", req.BankName), nil
}

// UpdateBank overwrites the name, active flag and API URL of the bank
// identified by the request's bank code. The code and creation timestamp are
// never touched.
func (s *BankService) UpdateBank(ctx context.Context, req *models.BankRequest) (msg string, err error) {
	defer s.guard("update bank", &err)

	current, err := s.repo.GetByCode(ctx, req.BankCode)
	if err != nil {
		return "", err
	}
	if current == nil {
		return "", utils.NewEntityNotFound(req.BankCode)
	}

	current.BankName = req.BankName
	current.IsActive = req.IsActive
	current.APIURL = req.APIURL
	if err := s.repo.Update(ctx, current); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s updated successfully", req.BankName), nil
}

// DeleteBank removes the bank with the given id after verifying it exists.
// Deletion is physical.
func (s *BankService) DeleteBank(ctx context.Context, bankID int) (msg string, err error) {
	defer s.guard("delete bank", &err)

	current, err := s.repo.GetByID(ctx, bankID)
	if err != nil {
		return "", err
	}
	if current == nil {
		return "", utils.NewEntityNotFound(bankID)
	}

	if err := s.repo.Delete(ctx, bankID); err != nil {
		return "", err
	}

	return "Entity deleted successfully", nil
}

// guard is the single error decorator applied to every operation. Business
// errors are logged once as warnings and passed through unchanged. Anything
// else is logged with a fresh correlation id and replaced by an opaque
// GeneralApplicationError so internal detail never crosses the service
// boundary.
func (s *BankService) guard(op string, errp *error) {
	err := *errp
	if err == nil {
		return
	}

	var be *utils.BusinessError
	if errors.As(err, &be) {
		log.Warn().Str("operation", op).Msg(be.Message)
		return
	}

	errorID := uuid.New().String()
	log.Error().Err(err).Str("operation", op).Str("error_id", errorID).Msg("unexpected error")
	*errp = utils.NewGeneralApplicationError(errorID)
}
