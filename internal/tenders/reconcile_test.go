package tenders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"tender-service/internal/models"
	"tender-service/internal/portal"
	"tender-service/internal/repository"
)

func seedParticipant(t *testing.T, store *repository.Store, name string) *models.Participant {
	t.Helper()
	p := &models.Participant{Type: models.CompanyTOV, Name: name}
	require.NoError(t, store.CreateParticipant(p))
	return p
}

func signedContracts(participantTitle string, docID int64, amount int64) []portal.ParticipantContract {
	return []portal.ParticipantContract{
		{
			ParticipantTitle: participantTitle,
			Contracts: []portal.Contract{
				{
					Status: &portal.Status{Title: statusContractSigned},
					Amount: &amount,
					Documents: []portal.Document{
						{ID: docID, DateModified: "25.05.2024 14:45", ViewURL: "https://portal/doc"},
					},
				},
			},
		},
	}
}

func TestReconcileAll_SkipsTerminalTenders(t *testing.T) {
	svc, store, _ := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)

	status := statusOffersReviewed
	now := time.Now().UTC().Truncate(time.Second)
	dealID, dealURL := "555", "https://portal/doc"
	amount := int64(95000)

	tender := seedTender(t, store, 1001, owner)
	tender.StatusTitle = &status
	tender.AuctionStart = &now
	tender.QualificationDate = &now
	tender.DealID = &dealID
	tender.DealDate = &now
	tender.DealAmount = &amount
	tender.DealURL = &dealURL
	require.NoError(t, store.SaveTender(tender))

	// No portal expectation: a terminal tender never costs a round-trip.
	updated, err := svc.ReconcileAll(context.Background())
	require.NoError(t, err)
	require.Zero(t, updated)
}

func TestReconcileAll_StatusAlwaysTracksSource(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)

	stale := "Період уточнень"
	tender := seedTender(t, store, 1001, owner)
	tender.StatusTitle = &stale
	require.NoError(t, store.SaveTender(tender))

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(1001)).
		Return(&portal.ParsedTender{StatusTitle: "Аукціон"}, nil)

	updated, err := svc.ReconcileAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	got, err := store.TenderByID(1001)
	require.NoError(t, err)
	require.Equal(t, "Аукціон", *got.StatusTitle)
}

func TestReconcileAll_DatesAreFillOnly(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)

	existing := time.Date(2024, time.May, 20, 11, 30, 0, 0, time.UTC)
	status := statusOffersReviewed
	tender := seedTender(t, store, 1001, owner)
	tender.StatusTitle = &status
	tender.AuctionStart = &existing
	require.NoError(t, store.SaveTender(tender))

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(1001)).
		Return(&portal.ParsedTender{
			StatusTitle: statusOffersReviewed,
			ImportantDates: &portal.ImportantDates{
				AuctionStart: "01.06.2024 09:00",
			},
			Awards: []portal.Award{{ComplaintPeriodStart: "21.05.2024 00:00"}},
		}, nil)

	updated, err := svc.ReconcileAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	got, err := store.TenderByID(1001)
	require.NoError(t, err)
	// The already-known auction start survives; qualification was filled in.
	require.True(t, got.AuctionStart.Equal(existing))
	require.True(t, got.QualificationDate.Equal(time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC)))
}

func TestReconcileAll_DealFieldsNeedParticipantAndSignature(t *testing.T) {
	tests := []struct {
		name             string
		participantName  string
		participantTitle string
		signed           bool
		expectFilled     bool
	}{
		{
			name:             "participant_named_and_signed",
			participantName:  "Постачальник",
			participantTitle: "ТОВ Постачальник плюс",
			signed:           true,
			expectFilled:     true,
		},
		{
			name:             "participant_title_does_not_match",
			participantName:  "Постачальник",
			participantTitle: "Інша фірма",
			signed:           true,
			expectFilled:     false,
		},
		{
			name:             "contract_not_signed",
			participantName:  "Постачальник",
			participantTitle: "ТОВ Постачальник плюс",
			signed:           false,
			expectFilled:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, portalClient := newTestService(t)
			owner := seedUser(t, store, "owner", models.RoleUser)
			participant := seedParticipant(t, store, tc.participantName)

			status := statusOffersReviewed
			tender := seedTender(t, store, 1001, owner)
			tender.StatusTitle = &status
			tender.ParticipantID = &participant.ID
			require.NoError(t, store.SaveTender(tender))

			contracts := signedContracts(tc.participantTitle, 555, 95000)
			if !tc.signed {
				contracts[0].Contracts[0].Status = &portal.Status{Title: "Очікує підпису"}
			}

			portalClient.EXPECT().
				FetchTender(gomock.Any(), int64(1001)).
				Return(&portal.ParsedTender{
					StatusTitle:          statusOffersReviewed,
					ParticipantContracts: contracts,
				}, nil)

			_, err := svc.ReconcileAll(context.Background())
			require.NoError(t, err)

			got, err := store.TenderByID(1001)
			require.NoError(t, err)
			if tc.expectFilled {
				require.Equal(t, "555", *got.DealID)
				require.Equal(t, int64(95000), *got.DealAmount)
				require.Equal(t, "https://portal/doc", *got.DealURL)
			} else {
				require.Nil(t, got.DealID)
				require.Nil(t, got.DealAmount)
			}
		})
	}
}

func TestReconcileAll_DealIDNeverOverwritten(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)
	participant := seedParticipant(t, store, "Постачальник")

	status := statusOffersReviewed
	known := "111"
	tender := seedTender(t, store, 1001, owner)
	tender.StatusTitle = &status
	tender.ParticipantID = &participant.ID
	tender.DealID = &known
	require.NoError(t, store.SaveTender(tender))

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(1001)).
		Return(&portal.ParsedTender{
			StatusTitle:          statusOffersReviewed,
			ParticipantContracts: signedContracts("ТОВ Постачальник", 999, 95000),
		}, nil)

	_, err := svc.ReconcileAll(context.Background())
	require.NoError(t, err)

	got, err := store.TenderByID(1001)
	require.NoError(t, err)
	require.Equal(t, "111", *got.DealID)
	// The still-missing siblings were filled from the same document.
	require.Equal(t, int64(95000), *got.DealAmount)
	require.NotNil(t, got.DealDate)
}

func TestReconcileAll_OneBrokenTenderNeverStopsTheBatch(t *testing.T) {
	svc, store, portalClient := newTestService(t)
	owner := seedUser(t, store, "owner", models.RoleUser)

	seedTender(t, store, 1001, owner)
	seedTender(t, store, 1002, owner)

	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(1001)).
		Return(nil, errors.New("portal exploded"))
	portalClient.EXPECT().
		FetchTender(gomock.Any(), int64(1002)).
		Return(&portal.ParsedTender{StatusTitle: "Аукціон"}, nil)

	updated, err := svc.ReconcileAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	got, err := store.TenderByID(1002)
	require.NoError(t, err)
	require.Equal(t, "Аукціон", *got.StatusTitle)
}
