package tenders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tender-service/internal/models"
	"tender-service/internal/portal"
)

func TestBuildTender_FullDocument(t *testing.T) {
	cost := int64(340)
	amount := int64(95000)

	parsed := &portal.ParsedTender{
		ProzorroNumber: "UA-2024-05-01-000001",
		ProcedureType:  "Відкриті торги",
		Title:          "Комп'ютерне обладнання",
		StatusTitle:    "Пропозиції розглянуті",
		Organizer: &portal.Organizer{
			Name:    "Міська лікарня",
			Usreou:  "12345678",
			Address: "м. Київ",
			ContactPerson: &portal.ContactPerson{
				Name:  "Іван Петренко",
				Phone: "+380501112233",
				Email: "ivan@example.com",
			},
		},
		Category: &portal.Category{ID: 7, Code: "30230000-0", Title: "Комп'ютерне обладнання"},
		Budget: &portal.Budget{
			Amount:            120000,
			AmountTitle:       "120 000,00",
			WithVat:           true,
			VatTitle:          "з ПДВ",
			CurrencyTitle:     "грн",
			CurrencyHTMLTitle: "₴",
			CurrencyID:        980,
		},
		ImportantDates: &portal.ImportantDates{
			EnquiryPeriodStart: "01.05.2024 09:00",
			EnquiryPeriodEnd:   "07.05.2024 18:00",
			TenderingPeriodEnd: "14.05.2024 18:00",
			AuctionStart:       "20.05.2024 11:30",
		},
		Nomenclatures: []portal.Nomenclature{
			{Title: "Ноутбук", Count: "5", DeliveryAddress: "м. Київ, вул. Головна 1", DeliveryPeriodTo: "30.06.2024"},
			{Title: "Монітор", Count: "10", DeliveryAddress: "ignored", DeliveryPeriodTo: "ignored"},
		},
		ParticipationCost: &cost,
		PaymentTerms:      []portal.PaymentTerm{{Days: 30}, {Days: 60}},
		Guarantee:         &portal.Guarantee{AmountTitle: true},
		ParticipantContracts: []portal.ParticipantContract{
			{
				ParticipantTitle: "ТОВ Постачальник",
				Contracts: []portal.Contract{
					{
						Status: &portal.Status{Title: "Підписаний"},
						Amount: &amount,
						Documents: []portal.Document{
							{ID: 555, DateModified: "25.05.2024 14:45", ViewURL: "https://portal/doc/555"},
						},
					},
				},
			},
		},
		Awards: []portal.Award{
			{ComplaintPeriodStart: "21.05.2024 00:00"},
		},
	}

	tender := buildTender(9, 1001, parsed)

	require.Equal(t, int64(1001), tender.ID)
	require.Equal(t, int64(9), *tender.UserID)
	require.Equal(t, models.StageCreated, tender.Stage)

	require.Equal(t, "UA-2024-05-01-000001", *tender.ProzorroNumber)
	require.Equal(t, "Міська лікарня", *tender.OrganizerName)
	require.Equal(t, "Іван Петренко", *tender.ContactPersonName)
	require.Equal(t, 7, *tender.CategoryID)
	require.Equal(t, 120000.0, *tender.BudgetAmount)
	require.Equal(t, 980, *tender.CurrencyID)
	require.True(t, *tender.WithVat)
	require.Equal(t, int64(340), *tender.ParticipantCost)

	// Delivery fields come from the first nomenclature only; every entry
	// becomes a line item.
	require.Equal(t, "м. Київ, вул. Головна 1", *tender.DeliveryAddress)
	require.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), *tender.DeliveryPeriodTo)
	require.Len(t, tender.Items, 2)
	require.Equal(t, "Ноутбук", tender.Items[0].Title)
	require.Equal(t, "10", tender.Items[1].Count)

	// First payment term only.
	require.Equal(t, 30, *tender.PaymentTermsDay)
	require.True(t, *tender.GuaranteeBank)

	require.Equal(t, time.Date(2024, time.May, 20, 11, 30, 0, 0, time.UTC), *tender.AuctionStart)

	// Qualification is the first award's complaint period start plus four days.
	require.Equal(t, time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC), *tender.QualificationDate)

	require.Equal(t, "555", *tender.DealID)
	require.Equal(t, "https://portal/doc/555", *tender.DealURL)
	require.Equal(t, time.Date(2024, time.May, 25, 14, 45, 0, 0, time.UTC), *tender.DealDate)
	require.Equal(t, int64(95000), *tender.DealAmount)
}

func TestBuildTender_SparseDocument(t *testing.T) {
	tender := buildTender(9, 1001, &portal.ParsedTender{Title: "Мінімальний"})

	require.Equal(t, "Мінімальний", *tender.Title)
	require.Nil(t, tender.ProzorroNumber)
	require.Nil(t, tender.OrganizerName)
	require.Nil(t, tender.BudgetAmount)
	require.Nil(t, tender.QualificationDate)
	require.Nil(t, tender.DealID)
	require.Nil(t, tender.DealAmount)
	require.Nil(t, tender.PaymentTermsDay)
	require.Empty(t, tender.Items)
}

func TestBuildTender_NilDocument(t *testing.T) {
	tender := buildTender(9, 1001, nil)
	require.Equal(t, int64(1001), tender.ID)
	require.Equal(t, int64(9), *tender.UserID)
	require.Equal(t, models.StageCreated, tender.Stage)
}

func TestQualificationDate(t *testing.T) {
	tests := []struct {
		name     string
		awards   []portal.Award
		expected *time.Time
	}{
		{
			name:     "no_awards",
			awards:   nil,
			expected: nil,
		},
		{
			name:     "empty_complaint_period",
			awards:   []portal.Award{{ComplaintPeriodStart: ""}},
			expected: nil,
		},
		{
			name:     "malformed_date",
			awards:   []portal.Award{{ComplaintPeriodStart: "2024-05-21"}},
			expected: nil,
		},
		{
			name:   "valid_first_award_plus_four_days",
			awards: []portal.Award{{ComplaintPeriodStart: "28.02.2024 10:00"}},
			expected: func() *time.Time {
				d := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
				return &d
			}(),
		},
		{
			name: "only_first_award_counts",
			awards: []portal.Award{
				{ComplaintPeriodStart: ""},
				{ComplaintPeriodStart: "21.05.2024 00:00"},
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, qualificationDate(tc.awards))
		})
	}
}

func TestFillDealFields_EachFieldIndependent(t *testing.T) {
	amount := int64(95000)

	// A malformed document date costs DealDate alone; id, url and amount
	// still land.
	contracts := []portal.ParticipantContract{
		{
			ParticipantTitle: "ТОВ Постачальник",
			Contracts: []portal.Contract{
				{
					Amount: &amount,
					Documents: []portal.Document{
						{ID: 555, DateModified: "garbage", ViewURL: "https://portal/doc/555"},
					},
				},
			},
		},
	}

	var tender models.Tender
	fillDealFields(&tender, contracts)

	require.Equal(t, "555", *tender.DealID)
	require.Equal(t, "https://portal/doc/555", *tender.DealURL)
	require.Nil(t, tender.DealDate)
	require.Equal(t, int64(95000), *tender.DealAmount)
}

func TestFillDealFields_NoDocumentsStillFillsAmount(t *testing.T) {
	amount := int64(95000)
	contracts := []portal.ParticipantContract{
		{Contracts: []portal.Contract{{Amount: &amount}}},
	}

	var tender models.Tender
	fillDealFields(&tender, contracts)

	require.Nil(t, tender.DealID)
	require.Nil(t, tender.DealURL)
	require.Nil(t, tender.DealDate)
	require.Equal(t, int64(95000), *tender.DealAmount)
}

func TestFillDealFields_EmptyChains(t *testing.T) {
	var tender models.Tender

	fillDealFields(&tender, nil)
	require.Nil(t, tender.DealAmount)

	fillDealFields(&tender, []portal.ParticipantContract{{}})
	require.Nil(t, tender.DealAmount)
}
