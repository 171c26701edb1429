package corpus

import (
	"log/slog"
	"time"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// pubDateLayout matches the archive API's pub_date format.
const pubDateLayout = "2006-01-02T15:04:05-0700"

// RecordsFromArchive converts fetched archive docs into TextRecords using
// the lead paragraph as the text, the section name as the category and the
// publication time as the timestamp. Docs without a lead paragraph are
// skipped. Docs with an unparseable pub_date keep a zero timestamp: they
// drop out of hour-of-day grouping but still count in section grouping.
func RecordsFromArchive(docs []models.ArchiveDoc) []models.TextRecord {
	records := make([]models.TextRecord, 0, len(docs))
	dropped := 0
	for _, doc := range docs {
		if doc.LeadParagraph == "" {
			dropped++
			continue
		}

		var ts time.Time
		if doc.PubDate != "" {
			parsed, err := time.Parse(pubDateLayout, doc.PubDate)
			if err != nil {
				slog.Warn("[Corpus] Unparseable pub_date, excluding from time grouping",
					slog.String("document_id", doc.ID),
					slog.String("pub_date", doc.PubDate))
			} else {
				ts = parsed
			}
		}

		records = append(records, models.TextRecord{
			DocumentID: doc.ID,
			Category:   doc.SectionName,
			Timestamp:  ts,
			Text:       doc.LeadParagraph,
		})
	}

	if dropped > 0 {
		slog.Info("[Corpus] Skipped docs without lead paragraphs",
			slog.Int("skipped", dropped))
	}
	return records
}
