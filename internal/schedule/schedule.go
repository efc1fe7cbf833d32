// Package schedule holds the shop's fixed weekly opening hours and the
// public contact block shown on the site.
package schedule

type Day struct {
	Day    string `json:"day"`
	Hours  string `json:"hours"`
	Status string `json:"status"`
}

type ShopInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// Weekly returns the operating hours, Monday first.
func Weekly() []Day {
	return []Day{
		{Day: "Monday", Hours: "09:00 AM - 06:00 PM", Status: "Open"},
		{Day: "Tuesday", Hours: "09:00 AM - 06:00 PM", Status: "Open"},
		{Day: "Wednesday", Hours: "09:00 AM - 06:00 PM", Status: "Open"},
		{Day: "Thursday", Hours: "09:00 AM - 06:00 PM", Status: "Open"},
		{Day: "Friday", Hours: "09:00 AM - 06:00 PM", Status: "Open"},
		{Day: "Saturday", Hours: "10:00 AM - 04:00 PM", Status: "Open"},
		{Day: "Sunday", Hours: "Closed", Status: "Closed"},
	}
}

func Info() ShopInfo {
	return ShopInfo{
		Name:     "EZTech Palembang",
		Address:  "Jl. Sudirman No. 123",
		City:     "Palembang, South Sumatra, Indonesia 30111",
		Phone:    "0711-123456",
		WhatsApp: "0812-3456-7890",
		Email:    "info@eztechpalembang.com",
	}
}
