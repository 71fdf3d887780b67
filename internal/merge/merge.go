// Package merge implements the partial-update policy: a sparse patch
// overwrites only the fields it explicitly carries, and can never null a
// field out. The merges are written out per entity on purpose: adding a
// field to a model forces a decision here instead of silently changing
// patch behavior.
package merge

import (
	"time"

	"tender-service/internal/models"
)

// ApplyTenderPatch copies every non-nil field of patch onto dst. The id,
// creation timestamp and owned collections are never touched: collections
// follow their own wholesale-replacement rule handled by the caller before
// the merge, and ownership never changes through a patch payload's id.
func ApplyTenderPatch(dst, patch *models.Tender) {
	if patch == nil {
		return
	}

	copyInt64(&dst.UserID, patch.UserID)
	copyInt64(&dst.SupplierID, patch.SupplierID)
	copyInt64(&dst.TendererID, patch.TendererID)
	copyInt64(&dst.ParticipantID, patch.ParticipantID)

	copyString(&dst.ProzorroNumber, patch.ProzorroNumber)
	copyString(&dst.Title, patch.Title)
	copyString(&dst.Unit, patch.Unit)
	copyString(&dst.ProcedureType, patch.ProcedureType)
	copyString(&dst.ProduceType, patch.ProduceType)

	copyString(&dst.OrganizerName, patch.OrganizerName)
	copyString(&dst.OrganizerUsreou, patch.OrganizerUsreou)
	copyString(&dst.OrganizerAddress, patch.OrganizerAddress)
	copyString(&dst.ContactPersonName, patch.ContactPersonName)
	copyString(&dst.ContactPersonPhone, patch.ContactPersonPhone)
	copyString(&dst.ContactPersonEmail, patch.ContactPersonEmail)

	copyInt(&dst.CategoryID, patch.CategoryID)
	copyString(&dst.CategoryCode, patch.CategoryCode)
	copyString(&dst.CategoryTitle, patch.CategoryTitle)

	copyString(&dst.StatusTitle, patch.StatusTitle)
	copyString(&dst.ParticipantsOfferStatus, patch.ParticipantsOfferStatus)
	copyString(&dst.InternalStage, patch.InternalStage)

	copyFloat(&dst.BudgetAmount, patch.BudgetAmount)
	copyString(&dst.BudgetAmountTitle, patch.BudgetAmountTitle)
	copyBool(&dst.WithVat, patch.WithVat)
	copyString(&dst.VatTitle, patch.VatTitle)
	copyString(&dst.CurrencyTitle, patch.CurrencyTitle)
	copyString(&dst.CurrencyHTMLTitle, patch.CurrencyHTMLTitle)
	copyInt(&dst.CurrencyID, patch.CurrencyID)

	copyBool(&dst.GuaranteeBank, patch.GuaranteeBank)
	copyInt64(&dst.ParticipantCost, patch.ParticipantCost)

	copyTime(&dst.EnquiryPeriodStart, patch.EnquiryPeriodStart)
	copyTime(&dst.EnquiryPeriodEnd, patch.EnquiryPeriodEnd)
	copyTime(&dst.TenderingPeriodEnd, patch.TenderingPeriodEnd)
	copyTime(&dst.AuctionStart, patch.AuctionStart)
	copyTime(&dst.QualificationDate, patch.QualificationDate)

	copyString(&dst.DealID, patch.DealID)
	copyTime(&dst.DealDate, patch.DealDate)
	copyInt64(&dst.DealAmount, patch.DealAmount)
	copyString(&dst.DealURL, patch.DealURL)

	copyInt64(&dst.AmountByAccounts, patch.AmountByAccounts)
	copyBool(&dst.DeliveryTermsUponRequest, patch.DeliveryTermsUponRequest)
	copyTime(&dst.DeliveryPeriodTo, patch.DeliveryPeriodTo)
	copyInt(&dst.PaymentTermsDay, patch.PaymentTermsDay)
	copyString(&dst.DeliveryAddress, patch.DeliveryAddress)

	copyInt(&dst.Cost, patch.Cost)
	copyString(&dst.Commentary, patch.Commentary)

	if patch.Stage != "" {
		dst.Stage = patch.Stage
	}
}

// UserPatch is the sparse payload for user updates. Nil means "leave as is";
// there is no way to null a field out through a patch.
type UserPatch struct {
	Name     *string            `json:"name"`
	Surname  *string            `json:"surname"`
	Email    *string            `json:"email"`
	Username *string            `json:"username"`
	Password *string            `json:"password"`
	Status   *models.UserStatus `json:"status"`
	Roles    models.RoleList    `json:"roles"`
}

// ApplyUserPatch copies every non-nil field of patch onto dst. Roles are
// excluded: role changes go through the admin path's own protection rules.
// The password, when present, is copied verbatim; hashing is the caller's
// concern.
func ApplyUserPatch(dst *models.User, patch UserPatch) {
	if patch.Name != nil {
		dst.Name = *patch.Name
	}
	if patch.Surname != nil {
		dst.Surname = *patch.Surname
	}
	if patch.Email != nil {
		dst.Email = *patch.Email
	}
	if patch.Username != nil {
		dst.Username = *patch.Username
	}
	if patch.Password != nil {
		dst.Password = *patch.Password
	}
	if patch.Status != nil {
		dst.Status = *patch.Status
	}
}

func copyTime(dst **time.Time, src *time.Time) {
	if src != nil {
		*dst = src
	}
}

func copyString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func copyInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

func copyInt64(dst **int64, src *int64) {
	if src != nil {
		*dst = src
	}
}

func copyFloat(dst **float64, src *float64) {
	if src != nil {
		*dst = src
	}
}

func copyBool(dst **bool, src *bool) {
	if src != nil {
		*dst = src
	}
}
