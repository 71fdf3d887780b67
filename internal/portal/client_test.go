package portal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPClient_FetchTender(t *testing.T) {
	document := `{
		"ProzorroNumber": "UA-2024-05-01-000001",
		"Title": "Комп'ютерне обладнання",
		"StatusTitle": "Період уточнень",
		"ParticipationCostAmount": 340,
		"Category": {"id": 7, "code": "30230000-0", "title": "Комп'ютери"},
		"Budget": {"Amount": 120000, "WithVat": true, "CurrencyId": 980},
		"ImportantDates": {"AuctionStart": "20.05.2024 11:30"},
		"Nomenclatures": [{"Title": "Ноутбук", "Count": "5"}],
		"Awards": [{"ComplaintPeriodStart": "21.05.2024 00:00"}],
		"ParticipantContracts": [{
			"ParticipantTitle": "ТОВ Постачальник",
			"Contracts": [{
				"Status": {"Title": "Підписаний"},
				"Amount": 95000,
				"Documents": [{"Id": 555, "DateModified": "25.05.2024 14:45", "ViewUrl": "https://portal/doc/555"}]
			}]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/tenders/1001":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(document))
		case "/tenders/4004":
			w.WriteHeader(http.StatusNotFound)
		case "/tenders/5005":
			w.WriteHeader(http.StatusBadGateway)
		case "/tenders/6006":
			w.Write([]byte("{broken"))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	t.Run("decodes_document", func(t *testing.T) {
		parsed, err := client.FetchTender(context.Background(), 1001)
		require.NoError(t, err)
		require.Equal(t, "UA-2024-05-01-000001", parsed.ProzorroNumber)
		require.Equal(t, int64(340), *parsed.ParticipationCost)
		require.Equal(t, 7, parsed.Category.ID)
		require.Equal(t, 980, parsed.Budget.CurrencyID)
		require.Equal(t, "20.05.2024 11:30", parsed.ImportantDates.AuctionStart)
		require.Len(t, parsed.Nomenclatures, 1)
		require.Equal(t, "21.05.2024 00:00", parsed.Awards[0].ComplaintPeriodStart)

		contract := parsed.ParticipantContracts[0].Contracts[0]
		require.Equal(t, "Підписаний", contract.Status.Title)
		require.Equal(t, int64(95000), *contract.Amount)
		require.Equal(t, int64(555), contract.Documents[0].ID)
		require.Equal(t, "https://portal/doc/555", contract.Documents[0].ViewURL)
	})

	t.Run("404_is_not_found", func(t *testing.T) {
		_, err := client.FetchTender(context.Background(), 4004)
		require.ErrorIs(t, err, ErrTenderNotFound)
	})

	t.Run("other_statuses_are_errors", func(t *testing.T) {
		_, err := client.FetchTender(context.Background(), 5005)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrTenderNotFound)
	})

	t.Run("broken_body_is_an_error", func(t *testing.T) {
		_, err := client.FetchTender(context.Background(), 6006)
		require.Error(t, err)
	})
}
