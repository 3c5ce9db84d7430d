package forms

import (
	"strings"
	"time"

	"promoadmin/internal/structs"
)

const dateLayout = "2006-01-02"

// ValidatePromotion checks a promotion draft. The date order rule only
// applies when both dates are present and parseable; equal dates are
// valid. A banner is mandatory on create, optional when editing an
// existing promotion.
func ValidatePromotion(d structs.PromotionDraft) Errors {
	errs := Errors{}

	d.Name = strings.TrimSpace(d.Name)

	collect(errs, validate.Struct(d))

	if _, seen := errs["endDate"]; !seen && d.StartDate != "" && d.EndDate != "" {
		start, errStart := time.Parse(dateLayout, d.StartDate)
		end, errEnd := time.Parse(dateLayout, d.EndDate)
		if errStart == nil && errEnd == nil && end.Before(start) {
			errs["endDate"] = "End date cannot be before start date"
		}
	}

	if !d.HasBanner && !d.Existing {
		errs["banner"] = "Please upload a banner image"
	}

	return errs
}
