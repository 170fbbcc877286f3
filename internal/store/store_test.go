package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mfarouk/marketpro-api/internal/storage"
)

func testKV(t *testing.T) storage.KV {
	t.Helper()
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return kv
}

// newTestStore builds a store over a throwaway file-backed KV with a
// controllable clock. Mutate *now to move time forward.
func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	return newTestStoreOn(t, testKV(t))
}

func newTestStoreOn(t *testing.T, kv storage.KV) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s, err := New(kv, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return s, &now
}

func TestNewSeedsDefaultAdmin(t *testing.T) {
	s, _ := newTestStore(t)

	users := s.Users()
	require.Len(t, users, 1)
	require.Equal(t, "admin", users[0].Username)
	require.Equal(t, "admin", users[0].Password)
	require.Equal(t, "General Manager", users[0].Name)
	require.Equal(t, []string{"all"}, users[0].Permissions)
}

func TestNewDoesNotReseedExistingUsers(t *testing.T) {
	kv := testKV(t)
	s, _ := newTestStoreOn(t, kv)
	s.AddUser(AddUserInput{Username: "clerk", Password: "pw", Name: "Clerk"})

	reloaded, _ := newTestStoreOn(t, kv)
	require.Len(t, reloaded.Users(), 2)
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := testKV(t)
	s, _ := newTestStoreOn(t, kv)

	company := s.AddCompany("Al Nour Trading")
	product := s.AddProduct(AddProductInput{
		Name:          "Olive Oil 1L",
		PriceAfterTax: 10,
		Stock:         50,
		CompanyID:     company.ID,
	})
	require.NotNil(t, product)
	invoice := s.AddInvoice(AddInvoiceInput{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		TotalAmount: 100,
	})

	reloaded, _ := newTestStoreOn(t, kv)
	require.Equal(t, s.Companies(), reloaded.Companies())
	require.Equal(t, s.Products(), reloaded.Products())
	require.Equal(t, s.Notifications(), reloaded.Notifications())

	got := reloaded.GetInvoice(invoice.ID)
	require.NotNil(t, got)
	require.Equal(t, invoice.InvoiceNumber, got.InvoiceNumber)
}
