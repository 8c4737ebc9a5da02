package billing

import (
	"errors"
	"testing"
	"time"

	"hostiva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillingRepo struct {
	bundles  map[string]*models.InvoiceBundle
	failWith error
}

func (f *fakeBillingRepo) GetInvoiceBundleByID(id string) (*models.InvoiceBundle, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.bundles[id], nil
}

func (f *fakeBillingRepo) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	return nil, nil
}

func (f *fakeBillingRepo) GetUserByID(id string) (*models.User, error) { return nil, nil }

func (f *fakeBillingRepo) ListInvoices(limit, offset int64) ([]models.Invoice, error) {
	return nil, nil
}

func (f *fakeBillingRepo) GetAdminByEmail(email string) (*models.Admin, error) { return nil, nil }

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:         "Hostiva",
		Tagline:      "Web hosting & domain solutions",
		Address:      "Akwa, Boulevard de la Liberte, Douala",
		SupportEmail: "support@hostiva.net",
		SupportPhone: "+237 6 55 44 33 22",
		LogoPath:     "testdata/missing-logo.png", // forces the text fallback
	}
}

func testBundle() *models.InvoiceBundle {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return &models.InvoiceBundle{
		Invoice: models.Invoice{
			ID:              "inv-1",
			InvoiceNumber:   "INV-1717171717-42",
			Amount:          45000,
			Status:          models.InvoiceStatusPaid,
			CreatedAt:       time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
			VerificationKey: "VK-9F3A2B",
			PinHash:         "A1B2C3D4E5",
			Signature:       "SIG-77XQ",
			UserID:          "user-1",
		},
		User: models.User{
			ID:       "user-1",
			FullName: "Amina Toure",
			Email:    "amina@example.com",
			Phone:    "+237 6 70 00 00 01",
			City:     "Douala",
			Country:  "Cameroon",
		},
		Service: &models.Service{
			ID:        "svc-1",
			Name:      "Business Hosting",
			StartDate: &start,
			EndDate:   &end,
			URL:       "https://cp.hostiva.net",
			Username:  "amina",
			Password:  "s3cret",
			ServerIP:  "41.202.10.7",
		},
		Domain: &models.Domain{ID: "dom-1", Name: "aminashop.cm"},
	}
}

func newTestService(repo *fakeBillingRepo) *DefaultInvoiceDocumentService {
	return &DefaultInvoiceDocumentService{
		Repo:    repo,
		Company: testCompany(),
		Now:     func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestComposeByIDProducesPDFAttachment(t *testing.T) {
	repo := &fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{"inv-1": testBundle()}}
	svc := newTestService(repo)

	doc, fileName, err := svc.ComposeByID("inv-1")
	require.NoError(t, err)

	assert.Equal(t, "Hostiva_INV-1717171717-42.pdf", fileName)
	require.Greater(t, len(doc), 1024)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestComposeByIDUnknownInvoice(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{}})

	_, _, err := svc.ComposeByID("nope")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestComposeByIDWrapsRepositoryFailures(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{failWith: errors.New("connection reset")})

	_, _, err := svc.ComposeByID("inv-1")
	require.Error(t, err)

	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "inv-1", compErr.InvoiceID)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestComposeWithoutServiceOmitsCredentials(t *testing.T) {
	withService := testBundle()
	withoutService := testBundle()
	withoutService.Service = nil
	withoutService.Invoice.ServiceID = ""

	repo := &fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{
		"with":    withService,
		"without": withoutService,
	}}
	svc := newTestService(repo)

	full, _, err := svc.ComposeByID("with")
	require.NoError(t, err)
	slim, _, err := svc.ComposeByID("without")
	require.NoError(t, err)

	// The credentials panel and its vertical space are gone entirely, so
	// the slim document carries measurably less content.
	assert.Less(t, len(slim), len(full))
}

func TestComposeWithoutCodesStillRenders(t *testing.T) {
	bundle := testBundle()
	bundle.Invoice.VerificationKey = ""
	bundle.Invoice.PinHash = ""
	bundle.Invoice.Signature = ""
	repo := &fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{"inv-1": bundle}}
	svc := newTestService(repo)

	doc, _, err := svc.ComposeByID("inv-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestComposeSurvivesMissingLogo(t *testing.T) {
	repo := &fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{"inv-1": testBundle()}}
	svc := newTestService(repo)
	svc.Company.LogoPath = "/definitely/not/here.png"

	_, _, err := svc.ComposeByID("inv-1")
	assert.NoError(t, err)
}

func TestComposeWithSparseRecords(t *testing.T) {
	// A bare invoice: customer known only by email, service with no dates
	// and no credentials, no domain.
	bundle := &models.InvoiceBundle{
		Invoice: models.Invoice{
			ID:            "inv-2",
			InvoiceNumber: "INV-1717171718-1",
			Amount:        12345.6,
			Status:        models.InvoiceStatusPending,
			CreatedAt:     time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
			UserID:        "user-2",
		},
		User:    models.User{ID: "user-2", Email: "client@example.com"},
		Service: &models.Service{ID: "svc-2", Name: "Starter Hosting"},
	}
	repo := &fakeBillingRepo{bundles: map[string]*models.InvoiceBundle{"inv-2": bundle}}
	svc := newTestService(repo)

	doc, _, err := svc.ComposeByID("inv-2")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}
