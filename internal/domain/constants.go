package domain

const RoleAdmin = "ADMIN"

// Gallery categories
const (
	CategoryLedPanels    = "led-panels"
	Category3DDecoration = "3d-decoration"
	CategoryEvents       = "events"
	CategoryOther        = "other"
)

var GalleryCategories = []string{
	CategoryLedPanels,
	Category3DDecoration,
	CategoryEvents,
	CategoryOther,
}

// Lead workflow statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusConverted,
	LeadStatusClosed,
}

const LeadSourceWebsite = "website"

const DefaultCurrency = "MAD"

// Well-known site setting keys probed by the frontend.
const (
	SettingCompanyEmail   = "company_email"
	SettingCompanyPhone   = "company_phone"
	SettingWhatsappNumber = "whatsapp_number"
	SettingAddressEn      = "address_en"
	SettingAddressFr      = "address_fr"
	SettingAddressAr      = "address_ar"
	SettingLogoURLLight   = "logo_url_light"
	SettingLogoURLDark    = "logo_url_dark"
)

func ValidGalleryCategory(c string) bool {
	for _, v := range GalleryCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}
