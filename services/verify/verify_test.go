package verify

import (
	"errors"
	"testing"
	"time"

	"hostiva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBillingRepo is an in-memory BillingRepository recording lookups.
type fakeBillingRepo struct {
	invoices    map[string]models.Invoice // keyed by invoiceNumber
	users       map[string]models.User    // keyed by id
	lookupCalls int
	failWith    error
}

func (f *fakeBillingRepo) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	f.lookupCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	inv, ok := f.invoices[number]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (f *fakeBillingRepo) GetUserByID(id string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeBillingRepo) GetInvoiceBundleByID(id string) (*models.InvoiceBundle, error) {
	return nil, nil
}

func (f *fakeBillingRepo) ListInvoices(limit, offset int64) ([]models.Invoice, error) {
	return nil, nil
}

func (f *fakeBillingRepo) GetAdminByEmail(email string) (*models.Admin, error) {
	return nil, nil
}

func newFakeRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		invoices: map[string]models.Invoice{
			"INV-1717171717-42": {
				ID:              "inv-1",
				InvoiceNumber:   "INV-1717171717-42",
				Amount:          45000,
				Status:          models.InvoiceStatusPaid,
				CreatedAt:       time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
				VerificationKey: "VK-9F3A2B",
				PinHash:         "A1B2C3D4E5",
				Signature:       "SIG-77XQ",
				UserID:          "user-1",
			},
		},
		users: map[string]models.User{
			"user-1": {ID: "user-1", FullName: "Amina Toure", Email: "amina@example.com"},
		},
	}
}

func validRequest() VerifyRequest {
	return VerifyRequest{
		InvoiceNumber:   "INV-1717171717-42",
		VerificationKey: "vk-9f3a2b",
		Email:           "AMINA@example.com",
		PinHash:         "a1b2c3d4e5",
		Signature:       "sig-77xq",
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	svc := &DefaultInvoiceVerificationService{Repo: newFakeRepo()}

	result, err := svc.Verify(validRequest())
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Message)
	require.NotNil(t, result.Invoice)
	assert.Equal(t, "INV-1717171717-42", result.Invoice.InvoiceNumber)
	assert.Equal(t, float64(45000), result.Invoice.Amount)
	assert.Equal(t, "Amina Toure", result.Invoice.ClientName)
}

func TestVerifyAllOrNothingMatching(t *testing.T) {
	mutations := map[string]func(*VerifyRequest){
		"verification key": func(r *VerifyRequest) { r.VerificationKey = "vk-9f3a2c" },
		"pin hash":         func(r *VerifyRequest) { r.PinHash = "a1b2c3d4e6" },
		"signature":        func(r *VerifyRequest) { r.Signature = "sig-77xr" },
		"email":            func(r *VerifyRequest) { r.Email = "amino@example.com" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			svc := &DefaultInvoiceVerificationService{Repo: newFakeRepo()}
			req := validRequest()
			mutate(&req)

			result, err := svc.Verify(req)
			require.NoError(t, err)

			assert.False(t, result.Valid)
			assert.Nil(t, result.Invoice)
			assert.Equal(t, MsgVerificationFailed, result.Message)
		})
	}
}

func TestVerifyCaseInsensitiveFields(t *testing.T) {
	svc := &DefaultInvoiceVerificationService{Repo: newFakeRepo()}

	req := VerifyRequest{
		InvoiceNumber:   "INV-1717171717-42",
		VerificationKey: "Vk-9F3a2B",
		Email:           "Amina@Example.COM",
		PinHash:         "A1b2C3d4E5",
		Signature:       "SiG-77Xq",
	}

	result, err := svc.Verify(req)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestVerifyInvoiceNumberIsCaseSensitive(t *testing.T) {
	svc := &DefaultInvoiceVerificationService{Repo: newFakeRepo()}

	req := validRequest()
	req.InvoiceNumber = "inv-1717171717-42"

	result, err := svc.Verify(req)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, MsgVerificationFailed, result.Message)
}

func TestVerifyMissingFieldsShortCircuit(t *testing.T) {
	blank := map[string]func(*VerifyRequest){
		"invoice number":   func(r *VerifyRequest) { r.InvoiceNumber = "" },
		"verification key": func(r *VerifyRequest) { r.VerificationKey = "   " },
		"email":            func(r *VerifyRequest) { r.Email = "" },
		"pin hash":         func(r *VerifyRequest) { r.PinHash = "\t" },
		"signature":        func(r *VerifyRequest) { r.Signature = "" },
	}

	for name, mutate := range blank {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := &DefaultInvoiceVerificationService{Repo: repo}
			req := validRequest()
			mutate(&req)

			result, err := svc.Verify(req)
			require.NoError(t, err)

			assert.False(t, result.Valid)
			assert.Equal(t, MsgMissingFields, result.Message)
			assert.Zero(t, repo.lookupCalls, "blank input must not hit the store")
		})
	}
}

func TestVerifyUnknownInvoiceIndistinguishableFromMismatch(t *testing.T) {
	svc := &DefaultInvoiceVerificationService{Repo: newFakeRepo()}

	unknown := validRequest()
	unknown.InvoiceNumber = "INV-0000000000-0"
	unknownResult, err := svc.Verify(unknown)
	require.NoError(t, err)

	mismatch := validRequest()
	mismatch.Signature = "wrong"
	mismatchResult, err := svc.Verify(mismatch)
	require.NoError(t, err)

	assert.False(t, unknownResult.Valid)
	assert.False(t, mismatchResult.Valid)
	assert.Equal(t, mismatchResult.Message, unknownResult.Message)
}

func TestVerifyClientNameFallsBackToEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.users["user-1"] = models.User{ID: "user-1", Email: "amina@example.com"}
	svc := &DefaultInvoiceVerificationService{Repo: repo}

	result, err := svc.Verify(validRequest())
	require.NoError(t, err)

	require.True(t, result.Valid)
	assert.Equal(t, "amina@example.com", result.Invoice.ClientName)
}

func TestVerifyRepositoryErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("connection reset")
	svc := &DefaultInvoiceVerificationService{Repo: repo}

	_, err := svc.Verify(validRequest())
	require.Error(t, err)
}
