package structs

import "io"

type Promotion struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	BannerImageUrl string `json:"bannerImageUrl"`
}

// PromotionDraft carries the form fields plus the banner facts the
// validator needs: whether a file came with this submission and whether
// the promotion already exists (an existing banner is preserved
// server-side when none is re-uploaded).
type PromotionDraft struct {
	Name      string `json:"name" validate:"required,min=3,max=100"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	HasBanner bool   `json:"-"`
	Existing  bool   `json:"-"`
}

// PromotionUpload is the multipart payload sent to the backend. Banner
// is nil when the existing banner should be kept.
type PromotionUpload struct {
	Name       string
	StartDate  string
	EndDate    string
	Banner     io.Reader
	BannerName string
}
