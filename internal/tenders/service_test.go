package tenders

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tender-service/internal/models"
	"tender-service/internal/portal"
	"tender-service/internal/repository"
	"tender-service/internal/storage"
	"tender-service/internal/tendererrors"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	return repository.NewStore(db)
}

func newTestService(t *testing.T) (*Service, *repository.Store, *portal.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := newTestStore(t)
	portalClient := portal.NewMockClient(ctrl)
	blobs, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	return NewService(store, portalClient, blobs, 0), store, portalClient
}

func seedUser(t *testing.T, store *repository.Store, username string, roles ...models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Name:     "Test",
		Surname:  username,
		Email:    username + "@example.com",
		Username: username,
		Password: "hash",
		Status:   models.UserActive,
		Roles:    roles,
	}
	require.NoError(t, store.CreateUser(u))
	return u
}

func seedTender(t *testing.T, store *repository.Store, id int64, owner *models.User) *models.Tender {
	t.Helper()
	title := "Seeded tender"
	tender := &models.Tender{ID: id, UserID: &owner.ID, Title: &title, Stage: models.StageCreated}
	require.NoError(t, store.CreateTender(tender))
	return tender
}

func TestGetByID_AccessScoping(t *testing.T) {
	svc, store, _ := newTestService(t)

	owner := seedUser(t, store, "owner", models.RoleUser)
	supplier := seedUser(t, store, "supplier", models.RoleSupplier)
	tenderer := seedUser(t, store, "tenderer", models.RoleTenderer)
	outsider := seedUser(t, store, "outsider", models.RoleUser)
	admin := seedUser(t, store, "admin", models.RoleAdmin)

	tender := seedTender(t, store, 1001, owner)
	tender.SupplierID = &supplier.ID
	tender.TendererID = &tenderer.ID
	require.NoError(t, store.SaveTender(tender))

	tests := []struct {
		name        string
		caller      *models.User
		expectError error
	}{
		{name: "owner_slot", caller: owner},
		{name: "supplier_slot", caller: supplier},
		{name: "tenderer_slot", caller: tenderer},
		{name: "admin_without_slot", caller: admin},
		{name: "no_slot_denied", caller: outsider, expectError: tendererrors.ErrAccessDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetByID(context.Background(), tc.caller, 1001)
			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1001), got.ID)
		})
	}
}

func TestGetByID_IngestsUnknownTender(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	caller := seedUser(t, store, "owner", models.RoleUser)

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(2002)).
		Return(&portal.ParsedTender{
			Title:       "Нові меблі",
			StatusTitle: "Період уточнень",
			Nomenclatures: []portal.Nomenclature{
				{Title: "Стіл", Count: "4"},
			},
		}, nil)

	got, err := svc.GetByID(context.Background(), caller, 2002)
	require.NoError(t, err)
	require.Equal(t, int64(2002), got.ID)
	require.Equal(t, caller.ID, *got.UserID)

	// A second read serves the persisted row, no portal round-trip.
	again, err := svc.GetByID(context.Background(), caller, 2002)
	require.NoError(t, err)
	require.Equal(t, "Нові меблі", *again.Title)
	require.Len(t, again.Items, 1)
}

func TestGetByID_IngestNeedsUserRole(t *testing.T) {
	svc, store, _ := newTestService(t)
	caller := seedUser(t, store, "supplier", models.RoleSupplier)

	// No portal expectation: the role gate fires before any fetch.
	_, err := svc.GetByID(context.Background(), caller, 3003)
	require.ErrorIs(t, err, tendererrors.ErrTenderNotFound)
}

func TestGetByID_PortalMiss(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	caller := seedUser(t, store, "owner", models.RoleUser)

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(4004)).
		Return(nil, portal.ErrTenderNotFound)

	_, err := svc.GetByID(context.Background(), caller, 4004)
	require.ErrorIs(t, err, tendererrors.ErrTenderNotFound)
}

func TestAddForUserByAdmin(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)
	seedTender(t, store, 1001, owner)

	t.Run("conflict_when_already_persisted", func(t *testing.T) {
		_, err := svc.AddForUserByAdmin(context.Background(), owner.ID, 1001)
		require.ErrorIs(t, err, tendererrors.ErrConflict)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := svc.AddForUserByAdmin(context.Background(), 999, 5005)
		require.ErrorIs(t, err, tendererrors.ErrUserNotFound)
	})

	t.Run("registers_to_given_user", func(t *testing.T) {
		portalClient.EXPECT().
			FetchTender(gomock.Any(), int64(5005)).
			Return(&portal.ParsedTender{Title: "Додано адміністратором"}, nil)

		got, err := svc.AddForUserByAdmin(context.Background(), owner.ID, 5005)
		require.NoError(t, err)
		require.Equal(t, owner.ID, *got.UserID)
	})
}

func TestUpdateForCaller(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)
	outsider := seedUser(t, store, "outsider", models.RoleUser)
	tender := seedTender(t, store, 1001, owner)

	t.Run("outsider_denied", func(t *testing.T) {
		note := "sneaky"
		_, err := svc.UpdateForCaller(outsider, &models.Tender{ID: tender.ID, Commentary: &note})
		require.ErrorIs(t, err, tendererrors.ErrAccessDenied)
	})

	t.Run("sparse_patch_keeps_existing_values", func(t *testing.T) {
		note := "first note"
		got, err := svc.UpdateForCaller(owner, &models.Tender{ID: tender.ID, Commentary: &note})
		require.NoError(t, err)
		require.Equal(t, "first note", *got.Commentary)
		require.Equal(t, "Seeded tender", *got.Title)

		// A later patch without commentary leaves it untouched.
		cost := 700
		got, err = svc.UpdateForCaller(owner, &models.Tender{ID: tender.ID, Cost: &cost})
		require.NoError(t, err)
		require.Equal(t, "first note", *got.Commentary)
		require.Equal(t, 700, *got.Cost)
	})

	t.Run("collection_replaced_wholesale", func(t *testing.T) {
		sup := "ТОВ Один"
		date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.UpdateForCaller(owner, &models.Tender{
			ID: tender.ID,
			ItemsAndParticipants: []models.ItemsAndParticipants{
				{Supplier: &sup, Date: &date, ItemStatus: models.ItemInvoiceRequested},
				{Supplier: &sup, ItemStatus: models.ItemInvoiceReceived},
			},
		})
		require.NoError(t, err)

		other := "ТОВ Два"
		got, err := svc.UpdateForCaller(owner, &models.Tender{
			ID: tender.ID,
			ItemsAndParticipants: []models.ItemsAndParticipants{
				{Supplier: &other, ItemStatus: models.ItemInvoicePaid},
			},
		})
		require.NoError(t, err)
		require.Len(t, got.ItemsAndParticipants, 1)
		require.Equal(t, "ТОВ Два", *got.ItemsAndParticipants[0].Supplier)

		stored, err := store.TenderByID(tender.ID)
		require.NoError(t, err)
		require.Len(t, stored.ItemsAndParticipants, 1)
		require.Equal(t, models.ItemInvoicePaid, stored.ItemsAndParticipants[0].ItemStatus)
	})
}

func TestUpdateByAdmin_SlotAssignment(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)
	supplier := seedUser(t, store, "supplier", models.RoleSupplier)
	plain := seedUser(t, store, "plain", models.RoleUser)
	tender := seedTender(t, store, 1001, owner)

	require.NoError(t, store.CreateParticipant(&models.Participant{Type: models.CompanyTOV, Name: "Постачальник"}))
	participants, err := store.Participants()
	require.NoError(t, err)
	participant := participants[0]

	t.Run("supplier_slot_needs_supplier_tag", func(t *testing.T) {
		_, err := svc.UpdateByAdmin(&models.Tender{ID: tender.ID}, nil, &plain.ID, nil, nil)
		require.ErrorIs(t, err, tendererrors.ErrInvalidArgument)
	})

	t.Run("unknown_participant", func(t *testing.T) {
		missing := int64(999)
		_, err := svc.UpdateByAdmin(&models.Tender{ID: tender.ID}, nil, nil, nil, &missing)
		require.ErrorIs(t, err, tendererrors.ErrInvalidArgument)
	})

	t.Run("valid_assignment", func(t *testing.T) {
		got, err := svc.UpdateByAdmin(&models.Tender{ID: tender.ID}, nil, &supplier.ID, nil, &participant.ID)
		require.NoError(t, err)
		require.Equal(t, supplier.ID, *got.SupplierID)
		require.Equal(t, participant.ID, *got.ParticipantID)
	})
}

func TestDelete(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)
	supplier := seedUser(t, store, "supplier", models.RoleSupplier)
	admin := seedUser(t, store, "admin", models.RoleAdmin)

	tender := seedTender(t, store, 1001, owner)
	tender.SupplierID = &supplier.ID
	require.NoError(t, store.SaveTender(tender))
	require.NoError(t, store.CreateFile(&models.File{TenderID: tender.ID, FileName: "a.pdf", StoredName: "x_a.pdf"}))

	t.Run("supplier_slot_cannot_delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(supplier, tender.ID), tendererrors.ErrAccessDenied)
	})

	t.Run("owner_deletes_with_children", func(t *testing.T) {
		require.NoError(t, svc.Delete(owner, tender.ID))

		_, err := store.TenderByID(tender.ID)
		require.ErrorIs(t, err, tendererrors.ErrTenderNotFound)

		files, err := store.FilesByTender(tender.ID)
		require.NoError(t, err)
		require.Empty(t, files)
	})

	t.Run("admin_deletes_any", func(t *testing.T) {
		seedTender(t, store, 2002, owner)
		require.NoError(t, svc.Delete(admin, 2002))
	})

	t.Run("missing_tender", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(admin, 9999), tendererrors.ErrTenderNotFound)
	})
}

func TestListForCaller(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser, models.RoleSupplier)
	other := seedUser(t, store, "other", models.RoleUser)

	seedTender(t, store, 1, owner)
	seedTender(t, store, 2, owner)
	seedTender(t, store, 3, other)

	supplied := seedTender(t, store, 4, other)
	supplied.SupplierID = &owner.ID
	require.NoError(t, store.SaveTender(supplied))

	t.Run("owner_slot_only", func(t *testing.T) {
		got, err := svc.ListForCaller(owner, "USER", 0, 20, "id", "asc", map[string]string{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, int64(1), got[0].ID)
	})

	t.Run("supplier_slot", func(t *testing.T) {
		got, err := svc.ListForCaller(owner, "SUPPLIER", 0, 20, "id", "asc", map[string]string{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, int64(4), got[0].ID)
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := svc.ListForCaller(owner, "OWNER", 0, 20, "id", "asc", map[string]string{})
		require.ErrorIs(t, err, tendererrors.ErrInvalidArgument)
	})

	t.Run("slot_parameter_cannot_widen_the_listing", func(t *testing.T) {
		got, err := svc.ListForCaller(owner, "USER", 0, 20, "id", "asc",
			map[string]string{"userId": "999"})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("broken_filter_still_returns_page", func(t *testing.T) {
		got, err := svc.ListForCaller(owner, "USER", 0, 20, "id", "asc",
			map[string]string{"categoryId": "garbage"})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestUnits(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)

	unitA, unitB := "кг", "шт"
	a := seedTender(t, store, 1, owner)
	a.Unit = &unitB
	require.NoError(t, store.SaveTender(a))
	b := seedTender(t, store, 2, owner)
	b.Unit = &unitA
	require.NoError(t, store.SaveTender(b))
	c := seedTender(t, store, 3, owner)
	c.Unit = &unitB
	require.NoError(t, store.SaveTender(c))
	seedTender(t, store, 4, owner)

	units, err := svc.Units()
	require.NoError(t, err)
	require.Equal(t, []string{"кг", "шт"}, units)
}
