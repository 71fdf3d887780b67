package tenders

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tender-service/internal/models"
	"tender-service/internal/portal"
	"tender-service/utils"
)

// Portal status labels the reconciliation logic keys on, verbatim from the
// source system.
const (
	statusOffersReviewed = "Пропозиції розглянуті"
	statusContractSigned = "Підписаний"
)

// ReconcileAll is the nightly sweep: every tender that still misses terminal
// state is re-fetched from the portal and filled in. Only statusTitle tracks
// the source unconditionally; every other field is fill-only and a value
// once set is never overwritten. One broken tender never stops the batch,
// and a short pause follows each actual write to spread load on the portal.
func (s *Service) ReconcileAll(ctx context.Context) (updated int, err error) {
	tenders, err := s.store.AllTenders()
	if err != nil {
		return 0, err
	}

	for i := range tenders {
		tender := &tenders[i]
		if !needsReconcile(tender) {
			continue
		}

		changed, err := s.reconcileOne(ctx, tender)
		if err != nil {
			utils.Warn("reconciliation skipped tender", map[string]any{
				"tender_id": tender.ID,
				"error":     err.Error(),
			})
			continue
		}
		if !changed {
			continue
		}

		if err := s.store.SaveTender(tender); err != nil {
			utils.Warn("reconciliation could not save tender", map[string]any{
				"tender_id": tender.ID,
				"error":     err.Error(),
			})
			continue
		}
		updated++

		select {
		case <-time.After(s.pause):
		case <-ctx.Done():
			return updated, ctx.Err()
		}
	}

	return updated, nil
}

// needsReconcile reports whether the tender still has unresolved state
// worth a portal round-trip.
func needsReconcile(t *models.Tender) bool {
	return t.StatusTitle == nil || *t.StatusTitle != statusOffersReviewed ||
		t.AuctionStart == nil ||
		t.QualificationDate == nil ||
		t.DealID == nil ||
		t.DealDate == nil ||
		t.DealAmount == nil ||
		t.DealURL == nil
}

// reconcileOne fetches the current portal document and applies the fill-in
// rules. Returns whether anything on the tender changed.
func (s *Service) reconcileOne(ctx context.Context, tender *models.Tender) (bool, error) {
	parsed, err := s.fetchFromPortal(ctx, tender.ID)
	if err != nil {
		return false, err
	}

	changed := false

	// The free-text status always mirrors the source.
	if tender.StatusTitle == nil || *tender.StatusTitle != parsed.StatusTitle {
		title := parsed.StatusTitle
		tender.StatusTitle = &title
		changed = true
	}

	if tender.AuctionStart == nil && parsed.ImportantDates != nil {
		if start := optDateTime(parsed.ImportantDates.AuctionStart); start != nil {
			tender.AuctionStart = start
			changed = true
		}
	}

	if tender.QualificationDate == nil {
		if q := qualificationDate(parsed.Awards); q != nil {
			tender.QualificationDate = q
			changed = true
		}
	}

	if reconcileDealFields(tender, parsed.ParticipantContracts) {
		changed = true
	}

	return changed, nil
}

// reconcileDealFields fills still-unset deal fields, and only from a signed
// contract whose participant title names the tender's assigned participant.
func reconcileDealFields(tender *models.Tender, contracts []portal.ParticipantContract) bool {
	missing := tender.DealID == nil || tender.DealDate == nil ||
		tender.DealAmount == nil || tender.DealURL == nil
	if !missing || len(contracts) == 0 {
		return false
	}

	pc := contracts[0]
	if tender.Participant == nil || !strings.Contains(pc.ParticipantTitle, tender.Participant.Name) {
		return false
	}
	if len(pc.Contracts) == 0 {
		return false
	}

	contract := pc.Contracts[0]
	if contract.Status == nil || contract.Status.Title != statusContractSigned || len(contract.Documents) == 0 {
		return false
	}
	doc := contract.Documents[0]

	changed := false

	if tender.DealID == nil {
		id := strconv.FormatInt(doc.ID, 10)
		tender.DealID = &id
		changed = true
	}

	if tender.DealDate == nil {
		if d, err := time.Parse(portalDateTimeLayout, doc.DateModified); err == nil {
			tender.DealDate = &d
			changed = true
		}
	}

	if tender.DealAmount == nil && contract.Amount != nil {
		tender.DealAmount = contract.Amount
		changed = true
	}

	if tender.DealURL == nil && doc.ViewURL != "" {
		url := doc.ViewURL
		tender.DealURL = &url
		changed = true
	}

	return changed
}
