package tenders

import (
	"strconv"
	"time"

	"tender-service/internal/models"
	"tender-service/internal/portal"
)

// Portal date formats. Everything carrying a time of day uses the first;
// delivery periods come date-only.
const (
	portalDateTimeLayout = "02.01.2006 15:04"
	portalDateLayout     = "02.01.2006"
)

// qualificationOffset is how long after an award's complaint period start
// the qualification date falls.
const qualificationOffset = 4 // calendar days

// buildTender maps a portal document onto a fresh tender owned by ownerID.
// Every nested group of the document is independently optional, and a
// malformed value inside one drops that value alone: a half-broken document
// still yields a usable tender.
func buildTender(ownerID, tenderID int64, parsed *portal.ParsedTender) *models.Tender {
	tender := &models.Tender{
		ID:     tenderID,
		UserID: &ownerID,
		Stage:  models.StageCreated,
	}
	if parsed == nil {
		return tender
	}

	tender.ProzorroNumber = optStr(parsed.ProzorroNumber)
	tender.ProcedureType = optStr(parsed.ProcedureType)
	tender.Title = optStr(parsed.Title)
	tender.StatusTitle = optStr(parsed.StatusTitle)
	tender.ParticipantCost = parsed.ParticipationCost

	if org := parsed.Organizer; org != nil {
		tender.OrganizerName = optStr(org.Name)
		tender.OrganizerUsreou = optStr(org.Usreou)
		tender.OrganizerAddress = optStr(org.Address)

		if cp := org.ContactPerson; cp != nil {
			tender.ContactPersonName = optStr(cp.Name)
			tender.ContactPersonPhone = optStr(cp.Phone)
			tender.ContactPersonEmail = optStr(cp.Email)
		}
	}

	if cat := parsed.Category; cat != nil {
		tender.CategoryID = &cat.ID
		tender.CategoryCode = optStr(cat.Code)
		tender.CategoryTitle = optStr(cat.Title)
	}

	if b := parsed.Budget; b != nil {
		tender.BudgetAmount = &b.Amount
		tender.BudgetAmountTitle = optStr(b.AmountTitle)
		tender.WithVat = &b.WithVat
		tender.VatTitle = optStr(b.VatTitle)
		tender.CurrencyTitle = optStr(b.CurrencyTitle)
		tender.CurrencyHTMLTitle = optStr(b.CurrencyHTMLTitle)
		tender.CurrencyID = &b.CurrencyID
	}

	// The tender's own delivery fields come from the first nomenclature
	// entry only; the full list becomes line items below.
	if len(parsed.Nomenclatures) > 0 {
		first := parsed.Nomenclatures[0]
		tender.DeliveryAddress = optStr(first.DeliveryAddress)
		if d, err := time.Parse(portalDateLayout, first.DeliveryPeriodTo); err == nil {
			tender.DeliveryPeriodTo = &d
		}
	}

	for _, n := range parsed.Nomenclatures {
		tender.Items = append(tender.Items, models.Item{
			Title: n.Title,
			Count: n.Count,
		})
	}

	tender.QualificationDate = qualificationDate(parsed.Awards)
	fillDealFields(tender, parsed.ParticipantContracts)

	if len(parsed.PaymentTerms) > 0 {
		days := parsed.PaymentTerms[0].Days
		tender.PaymentTermsDay = &days
	}

	if parsed.Guarantee != nil {
		tender.GuaranteeBank = &parsed.Guarantee.AmountTitle
	}

	if dates := parsed.ImportantDates; dates != nil {
		tender.EnquiryPeriodStart = optDateTime(dates.EnquiryPeriodStart)
		tender.EnquiryPeriodEnd = optDateTime(dates.EnquiryPeriodEnd)
		tender.TenderingPeriodEnd = optDateTime(dates.TenderingPeriodEnd)
		tender.AuctionStart = optDateTime(dates.AuctionStart)
	}

	return tender
}

// qualificationDate derives the qualification date from the first award's
// complaint period start, or nil when the awards chain is absent or broken.
func qualificationDate(awards []portal.Award) *time.Time {
	if len(awards) == 0 || awards[0].ComplaintPeriodStart == "" {
		return nil
	}
	start, err := time.Parse(portalDateTimeLayout, awards[0].ComplaintPeriodStart)
	if err != nil {
		return nil
	}
	q := start.AddDate(0, 0, qualificationOffset)
	return &q
}

// fillDealFields populates the deal outcome from the first participant
// contract's first contract's first document. Each of the four fields is
// set independently, so one malformed value never costs its siblings.
func fillDealFields(tender *models.Tender, contracts []portal.ParticipantContract) {
	if len(contracts) == 0 || len(contracts[0].Contracts) == 0 {
		return
	}
	contract := contracts[0].Contracts[0]

	if len(contract.Documents) > 0 {
		doc := contract.Documents[0]

		id := strconv.FormatInt(doc.ID, 10)
		tender.DealID = &id
		tender.DealURL = optStr(doc.ViewURL)
		if d, err := time.Parse(portalDateTimeLayout, doc.DateModified); err == nil {
			tender.DealDate = &d
		}
	}

	tender.DealAmount = contract.Amount
}

// optStr maps the portal's empty strings to "not provided".
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optDateTime parses a portal date-time, nil on absence or garbage.
func optDateTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(portalDateTimeLayout, s)
	if err != nil {
		return nil
	}
	return &d
}
