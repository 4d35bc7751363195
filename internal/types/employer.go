package types

import "time"

// EmployerProfile is the structured document produced by scraping an
// employer/career-fair page. It is intentionally shaped like the résumé
// record: a flat JSON tree consumed downstream by the analysis step.
type EmployerProfile struct {
	URL                 string            `json:"url"`
	ScrapedAt           time.Time         `json:"scraped_at"`
	CompanyName         string            `json:"company_name,omitempty"`
	About               string            `json:"about,omitempty"`
	WeAreLookingFor     string            `json:"we_are_looking_for,omitempty"`
	Industry            string            `json:"industry,omitempty"`
	Website             string            `json:"website,omitempty"`
	PositionTypes       []string          `json:"position_types,omitempty"`
	MajorsRecruited     []string          `json:"majors_recruited,omitempty"`
	DesiredClassYears   []string          `json:"desired_class_years,omitempty"`
	BoothLocation       string            `json:"booth_location,omitempty"`
	OrganizationProfile map[string]string `json:"organization_profile,omitempty"`
	EventDetails        map[string]string `json:"event_details,omitempty"`
	ContactInfo         map[string]string `json:"contact_info,omitempty"`
	AllSections         map[string]string `json:"all_sections,omitempty"`
	AllTextContent      string            `json:"all_text_content,omitempty"`
}
