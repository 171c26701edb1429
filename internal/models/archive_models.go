package models

type ArchiveResponse = struct {
	Response struct {
		Docs []ArchiveDoc `json:"docs"`
		Meta struct {
			Hits int `json:"hits"`
		} `json:"meta"`
	} `json:"response"`
}

type ArchiveDoc = struct {
	ID            string `json:"_id"`
	LeadParagraph string `json:"lead_paragraph"`
	SectionName   string `json:"section_name"`
	PubDate       string `json:"pub_date"`
	WebURL        string `json:"web_url"`
	Headline      struct {
		Main string `json:"main"`
	} `json:"headline"`
}
