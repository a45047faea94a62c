package domain

// AppSettings holds the console-wide settings shown on the settings page
type AppSettings struct {
	AppName             string `json:"app_name" yaml:"app_name" binding:"required"`
	AppEmail            string `json:"app_email" yaml:"app_email"`
	AppPhone            string `json:"app_phone" yaml:"app_phone"`
	UPIID               string `json:"upi_id" yaml:"upi_id"`
	UPIQRCode           string `json:"upi_qr_code" yaml:"upi_qr_code"`
	AutoApproveVerified bool   `json:"auto_approve_verified" yaml:"auto_approve_verified"`
	EmailNotifications  bool   `json:"email_notifications" yaml:"email_notifications"`
	SMSNotifications    bool   `json:"sms_notifications" yaml:"sms_notifications"`
}

// DefaultSettings returns the settings used before an admin saves any
func DefaultSettings() AppSettings {
	return AppSettings{
		AppName:            "JBP Agrawal Sabha",
		AppEmail:           "jabalpuragrawalsabha2019@gmail.com",
		AppPhone:           "+91 9826115733",
		UPIID:              "jbpagrawalsabha@upi",
		EmailNotifications: true,
	}
}

// NavItem is one entry of the console sidebar
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Navigation lists the sidebar in display order
var Navigation = []NavItem{
	{"Dashboard", "/dashboard"},
	{"Users", "/dashboard/users"},
	{"Matrimonial", "/dashboard/matrimonial"},
	{"Events", "/dashboard/events"},
	{"Jobs", "/dashboard/jobs"},
	{"Blood Donors", "/dashboard/blood-donors"},
	{"Donations", "/dashboard/donations"},
	{"Post Holders", "/dashboard/post-holders"},
	{"Contact Requests", "/dashboard/contact-requests"},
	{"Deletion Requests", "/dashboard/deletion-requests"},
	{"Import Members", "/dashboard/import"},
	{"Settings", "/dashboard/settings"},
}
