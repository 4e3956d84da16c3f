package refreshing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/revenue-attribution-api/infrastructure/repository/mocks"
	storemocks "github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot/mocks"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

func stringPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fixtures struct {
	crmRepo      *repomocks.MockCRMRepository
	platformRepo *repomocks.MockPlatformRepository
	store        *storemocks.MockStore
	service      *Service
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)
	crmRepo := repomocks.NewMockCRMRepository(ctrl)
	platformRepo := repomocks.NewMockPlatformRepository(ctrl)
	store := storemocks.NewMockStore(ctrl)

	window := domain.NewMonthWindow(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 5)

	return fixtures{
		crmRepo:      crmRepo,
		platformRepo: platformRepo,
		store:        store,
		service: &Service{
			crmRepo:      crmRepo,
			platformRepo: platformRepo,
			store:        store,
			window:       window,
			now:          time.Now,
		},
	}
}

func (f fixtures) expectWarehouse(
	crmCompanies []domain.CRMCompany,
	owners []domain.Owner,
	companies []domain.PlatformCompany,
	orders []domain.Order,
	samples []domain.Sample,
	tests []domain.TestLineItem,
) {
	f.crmRepo.EXPECT().ListCompanies().Return(crmCompanies, nil)
	f.crmRepo.EXPECT().ListOwners().Return(owners, nil)
	f.platformRepo.EXPECT().ListCompanies().Return(companies, nil)
	f.platformRepo.EXPECT().ListOrders().Return(orders, nil)
	f.platformRepo.EXPECT().ListSamples().Return(samples, nil)
	f.platformRepo.EXPECT().ListTests().Return(tests, nil)
}

func TestRunGeneratesSnapshotWithAttributedRevenue(t *testing.T) {
	f := newFixtures(t)

	f.expectWarehouse(
		[]domain.CRMCompany{
			{ID: 1, Domain: stringPtr("acme.com"), Name: "Acme", OwnerID: stringPtr("owner-1")},
		},
		[]domain.Owner{
			{ID: "owner-1", Email: "a@x.com"},
		},
		[]domain.PlatformCompany{
			{ID: 10, Name: "Acme", Website: stringPtr("https://www.acme.com")},
		},
		[]domain.Order{
			{ID: 20, CompanyID: 10, OrderedAt: timePtr(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)), Status: 1},
		},
		[]domain.Sample{
			{ID: 30, OrderID: 20, CreatedAt: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
		},
		[]domain.TestLineItem{
			{ID: 40, SampleID: 30, BasePrice: decimal.RequireFromString("100"), TurnaroundFee: decPtr("10"), CompositeFee: decPtr("0")},
		},
	)

	var written []domain.SnapshotRecord
	f.store.EXPECT().
		Write(gomock.Any(), gomock.Any()).
		DoAndReturn(func(records []domain.SnapshotRecord, _ time.Time) error {
			written = records
			return nil
		})

	result, err := f.service.Run()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.RunStatusSuccess, result.Status)

	require.Len(t, written, 1)
	assert.Equal(t, "a@x.com", written[0].OwnerEmail)
	require.NotNil(t, written[0].Totals["feb_2025"])
	assert.True(t, written[0].Totals["feb_2025"].Equal(decimal.RequireFromString("110")))
	assert.Nil(t, written[0].Totals["jan_2025"])
	assert.Nil(t, written[0].Totals["mar_2025"])
	assert.Nil(t, written[0].Totals["apr_2025"])
	assert.Nil(t, written[0].Totals["may_2025"])
}

func TestRunAttributesUnmatchedRevenueToNoOwner(t *testing.T) {
	f := newFixtures(t)

	f.expectWarehouse(
		nil,
		nil,
		[]domain.PlatformCompany{
			{ID: 10, Name: "Desconhecida", Website: stringPtr("nowhere.com")},
		},
		[]domain.Order{
			{ID: 20, CompanyID: 10, OrderedAt: timePtr(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)), Status: 2},
		},
		[]domain.Sample{
			{ID: 30, OrderID: 20, CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
		[]domain.TestLineItem{
			{ID: 40, SampleID: 30, BasePrice: decimal.RequireFromString("25")},
		},
	)

	var written []domain.SnapshotRecord
	f.store.EXPECT().
		Write(gomock.Any(), gomock.Any()).
		DoAndReturn(func(records []domain.SnapshotRecord, _ time.Time) error {
			written = records
			return nil
		})

	_, err := f.service.Run()
	require.NoError(t, err)

	require.Len(t, written, 1)
	assert.Equal(t, domain.NoOwnerSentinel, written[0].OwnerEmail)
	require.NotNil(t, written[0].Totals["mar_2025"])
	assert.True(t, written[0].Totals["mar_2025"].Equal(decimal.RequireFromString("25")))
}

func TestRunRepositoryFailureSkipsWrite(t *testing.T) {
	f := newFixtures(t)

	f.crmRepo.EXPECT().ListCompanies().Return(nil, errors.New("conexão recusada"))

	// Nenhuma gravação pode acontecer quando a coleta falha
	result, err := f.service.Run()
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.RunStatusError, result.Status)
	assert.Contains(t, result.Output, "conexão recusada")
}

func TestRunStoreFailurePropagates(t *testing.T) {
	f := newFixtures(t)

	f.expectWarehouse(nil, nil, nil, nil, nil, nil)
	f.store.EXPECT().
		Write(gomock.Any(), gomock.Any()).
		Return(errors.New("disco cheio"))

	result, err := f.service.Run()
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.RunStatusError, result.Status)
	assert.Equal(t, "erro ao persistir o snapshot de receita", result.Message)
}
