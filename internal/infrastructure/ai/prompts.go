package ai

import (
	"fmt"
	"strings"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
)

const quoteAnalysisInstructions = `Je bent een commercieel adviseur voor een klein Nederlands bedrijf.
Beoordeel de onderstaande offerte en schat de kans dat de klant deze accepteert.
Antwoord uitsluitend met JSON in de vorm:
{"onderbouwing": "<maximaal 5 zinnen>", "winkans": <getal van 0 tot 100>}`

func buildQuotePrompt(q *entity.Quote) string {
	var b strings.Builder
	b.WriteString(quoteAnalysisInstructions)
	b.WriteString("\n\nOfferte:\n")
	fmt.Fprintf(&b, "- Nummer: %s\n", q.Number)
	fmt.Fprintf(&b, "- Titel: %s\n", q.Title)
	if q.ClientName != "" {
		fmt.Fprintf(&b, "- Klant: %s\n", q.ClientName)
	}
	if q.Description != nil && *q.Description != "" {
		fmt.Fprintf(&b, "- Omschrijving: %s\n", *q.Description)
	}
	fmt.Fprintf(&b, "- Datum: %s\n", q.Date.Format("2006-01-02"))
	if q.ValidUntil != nil {
		fmt.Fprintf(&b, "- Geldig tot: %s\n", q.ValidUntil.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "- Status: %s\n", q.Status)
	b.WriteString("- Regels:\n")
	for _, line := range q.Lines {
		fmt.Fprintf(&b, "  * %s: %g x EUR %.2f\n", line.Description, line.Quantity, line.UnitPrice)
	}
	fmt.Fprintf(&b, "- Subtotaal: EUR %.2f\n", q.Subtotal)
	fmt.Fprintf(&b, "- BTW (%g%%): EUR %.2f\n", q.VATRate, q.VATAmount)
	fmt.Fprintf(&b, "- Totaal: EUR %.2f\n", q.Total)
	return b.String()
}
