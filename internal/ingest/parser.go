package ingest

import (
	"regexp"
	"strings"
)

// priceToken matches tokens consisting solely of digits and comma/period
// separators. This is the exact acceptance rule existing menu PDFs were
// parsed with, so it is reproduced as-is.
var priceToken = regexp.MustCompile(`^[0-9.,]+$`)

const (
	reasonTooFewTokens    = "too few tokens"
	reasonNonNumericPrice = "non-numeric price token"
)

// ParseLines applies the menu-line heuristic to OCR output: each non-blank
// line is split on whitespace, the final three tokens become the small,
// medium and large prices, and everything before them becomes the item
// name. Lines failing the shape check land in the rejection list.
func ParseLines(text string) Report {
	var report Report

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			report.Rejected = append(report.Rejected, RejectedLine{Line: line, Reason: reasonTooFewTokens})
			continue
		}

		prices := fields[len(fields)-3:]
		ok := true
		for _, tok := range prices {
			if !priceToken.MatchString(tok) {
				ok = false
				break
			}
		}
		if !ok {
			report.Rejected = append(report.Rejected, RejectedLine{Line: line, Reason: reasonNonNumericPrice})
			continue
		}

		report.Items = append(report.Items, ParsedItem{
			Name:        strings.Join(fields[:len(fields)-3], " "),
			PriceSmall:  prices[0],
			PriceMedium: prices[1],
			PriceLarge:  prices[2],
		})
	}

	return report
}
