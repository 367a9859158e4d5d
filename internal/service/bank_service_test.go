package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psepay/pse_api/internal/models"
	"github.com/psepay/pse_api/internal/repository"
	"github.com/psepay/pse_api/internal/service"
	"github.com/psepay/pse_api/internal/utils"
)

// fakeBankRepo is an in-memory stand-in for the postgres repository. Errors
// can be injected per method to exercise the unexpected-failure path.
type fakeBankRepo struct {
	banks  []models.Bank
	nextID int

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeBankRepo(banks ...models.Bank) *fakeBankRepo {
	r := &fakeBankRepo{nextID: 1}
	for _, b := range banks {
		b.BankID = r.nextID
		r.nextID++
		r.banks = append(r.banks, b)
	}
	return r
}

func (r *fakeBankRepo) List(_ context.Context, filter repository.BankFilter) ([]models.Bank, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if filter.BankID > 0 {
		for _, b := range r.banks {
			if b.BankID == filter.BankID {
				return []models.Bank{b}, nil
			}
		}
		return nil, nil
	}
	return append([]models.Bank(nil), r.banks...), nil
}

func (r *fakeBankRepo) GetByID(_ context.Context, bankID int) (*models.Bank, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for i := range r.banks {
		if r.banks[i].BankID == bankID {
			b := r.banks[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBankRepo) GetByCode(_ context.Context, bankCode string) (*models.Bank, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for i := range r.banks {
		if r.banks[i].BankCode == bankCode {
			b := r.banks[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBankRepo) Create(_ context.Context, bank *models.Bank) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	bank.BankID = r.nextID
	r.nextID++
	bank.CreatedDate = time.Now()
	r.banks = append(r.banks, *bank)
	return nil
}

func (r *fakeBankRepo) Update(_ context.Context, bank *models.Bank) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.banks {
		if r.banks[i].BankID == bank.BankID {
			r.banks[i].BankName = bank.BankName
			r.banks[i].IsActive = bank.IsActive
			r.banks[i].APIURL = bank.APIURL
			return nil
		}
	}
	return nil
}

func (r *fakeBankRepo) Delete(_ context.Context, bankID int) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.banks {
		if r.banks[i].BankID == bankID {
			r.banks = append(r.banks[:i], r.banks[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedBank(code, name string) models.Bank {
	return models.Bank{
		BankCode:    code,
		BankName:    name,
		IsActive:    true,
		APIURL:      "https://" + code + ".example.com",
		CreatedDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBankService_GetBanks(t *testing.T) {
	repo := newFakeBankRepo(seedBank("BC001", "Bank One"), seedBank("BC002", "Bank Two"))
	svc := service.NewBankService(repo)

	t.Run("no filter returns all", func(t *testing.T) {
		banks, err := svc.GetBanks(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, banks, 2)
		assert.Equal(t, "BC001", banks[0].BankCode)
		assert.Equal(t, "Bank One", banks[0].BankName)
		assert.Equal(t, 1, banks[0].BankID)
	})

	t.Run("filter by id returns at most one", func(t *testing.T) {
		banks, err := svc.GetBanks(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, banks, 1)
		assert.Equal(t, "BC002", banks[0].BankCode)
	})

	t.Run("filter by unknown id returns empty", func(t *testing.T) {
		banks, err := svc.GetBanks(context.Background(), 9999)
		require.NoError(t, err)
		assert.Empty(t, banks)
	})
}

func TestBankService_CreateBank(t *testing.T) {
	t.Run("new code persists and reports name", func(t *testing.T) {
		repo := newFakeBankRepo()
		svc := service.NewBankService(repo)

		msg, err := svc.CreateBank(context.Background(), &models.BankRequest{
			BankCode: "BC001",
			BankName: "Bank One",
			IsActive: true,
			APIURL:   "https://a",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bank One created successfully", msg)

		created, err := repo.GetByCode(context.Background(), "BC001")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 1, created.BankID)
		assert.False(t, created.CreatedDate.IsZero())
		assert.Equal(t, "Bank One", created.BankName)
		assert.True(t, created.IsActive)
		assert.Equal(t, "https://a", created.APIURL)
	})

	t.Run("duplicate code fails without writing", func(t *testing.T) {
		repo := newFakeBankRepo(seedBank("BC001", "Bank One"))
		svc := service.NewBankService(repo)

		_, err := svc.CreateBank(context.Background(), &models.BankRequest{
			BankCode: "BC001",
			BankName: "Another Bank",
			APIURL:   "https://b",
		})
		require.Error(t, err)

		var be *utils.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 409, be.StatusCode)
		assert.Equal(t, "ENTITY_ALREADY_EXISTS", be.Code)
		assert.Equal(t, "Entity BC001 already exists", be.Message)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("code match is case sensitive", func(t *testing.T) {
		repo := newFakeBankRepo(seedBank("BC001", "Bank One"))
		svc := service.NewBankService(repo)

		msg, err := svc.CreateBank(context.Background(), &models.BankRequest{
			BankCode: "bc001",
			BankName: "Lower Bank",
			APIURL:   "https://c",
		})
		require.NoError(t, err)
		assert.Equal(t, "Lower Bank created successfully", msg)
	})
}

func TestBankService_UpdateBank(t *testing.T) {
	t.Run("unknown code fails without writing", func(t *testing.T) {
		repo := newFakeBankRepo()
		svc := service.NewBankService(repo)

		_, err := svc.UpdateBank(context.Background(), &models.BankRequest{
			BankCode: "BC404",
			BankName: "Ghost Bank",
			APIURL:   "https://g",
		})

		var be *utils.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 404, be.StatusCode)
		assert.Equal(t, "Entity BC404 not found", be.Message)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("known code changes only mutable fields", func(t *testing.T) {
		repo := newFakeBankRepo(seedBank("BC001", "Bank One"))
		before, _ := repo.GetByCode(context.Background(), "BC001")
		svc := service.NewBankService(repo)

		msg, err := svc.UpdateBank(context.Background(), &models.BankRequest{
			BankCode: "BC001",
			BankName: "Bank One Renamed",
			IsActive: false,
			APIURL:   "https://new",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bank One Renamed updated successfully", msg)

		after, err := repo.GetByCode(context.Background(), "BC001")
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.Equal(t, "Bank One Renamed", after.BankName)
		assert.False(t, after.IsActive)
		assert.Equal(t, "https://new", after.APIURL)
		assert.Equal(t, before.BankID, after.BankID)
		assert.Equal(t, before.BankCode, after.BankCode)
		assert.Equal(t, before.CreatedDate, after.CreatedDate)
	})
}

func TestBankService_DeleteBank(t *testing.T) {
	t.Run("unknown id fails without writing", func(t *testing.T) {
		repo := newFakeBankRepo()
		svc := service.NewBankService(repo)

		_, err := svc.DeleteBank(context.Background(), 9999)

		var be *utils.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 404, be.StatusCode)
		assert.Equal(t, "Entity 9999 not found", be.Message)
		assert.Zero(t, repo.deleteCalls)
	})

	t.Run("known id is removed from listing", func(t *testing.T) {
		repo := newFakeBankRepo(seedBank("BC001", "Bank One"), seedBank("BC002", "Bank Two"))
		svc := service.NewBankService(repo)

		msg, err := svc.DeleteBank(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Entity deleted successfully", msg)

		banks, err := svc.GetBanks(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, banks, 1)
		assert.Equal(t, "BC002", banks[0].BankCode)
	})
}

func TestBankService_GuardMasksUnexpectedErrors(t *testing.T) {
	internal := errors.New("pq: connection reset by peer")

	tests := []struct {
		name string
		call func(svc *service.BankService) error
		repo *fakeBankRepo
	}{
		{
			name: "list failure",
			repo: &fakeBankRepo{listErr: internal},
			call: func(svc *service.BankService) error {
				_, err := svc.GetBanks(context.Background(), 0)
				return err
			},
		},
		{
			name: "lookup failure",
			repo: &fakeBankRepo{getErr: internal},
			call: func(svc *service.BankService) error {
				_, err := svc.CreateBank(context.Background(), &models.BankRequest{BankCode: "BC001", BankName: "Bank One", APIURL: "https://a"})
				return err
			},
		},
		{
			name: "insert failure",
			repo: &fakeBankRepo{createErr: internal, nextID: 1},
			call: func(svc *service.BankService) error {
				_, err := svc.CreateBank(context.Background(), &models.BankRequest{BankCode: "BC001", BankName: "Bank One", APIURL: "https://a"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewBankService(tt.repo)
			err := tt.call(svc)
			require.Error(t, err)

			var gae *utils.GeneralApplicationError
			require.ErrorAs(t, err, &gae)
			assert.NotEmpty(t, gae.ErrorID)

			// The caller sees the correlation id only, never the cause.
			assert.NotContains(t, err.Error(), internal.Error())
			assert.Contains(t, err.Error(), gae.ErrorID)

			var be *utils.BusinessError
			assert.False(t, errors.As(err, &be))
		})
	}
}

func TestBankService_BusinessErrorsPassThroughUnchanged(t *testing.T) {
	repo := newFakeBankRepo(seedBank("BC001", "Bank One"))
	svc := service.NewBankService(repo)

	_, err := svc.CreateBank(context.Background(), &models.BankRequest{BankCode: "BC001", BankName: "Bank One", APIURL: "https://a"})

	var gae *utils.GeneralApplicationError
	assert.False(t, errors.As(err, &gae), "business errors must not be wrapped")
}
