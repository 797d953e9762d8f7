package deliveroo

import (
	"strconv"
	"strings"
)

// Restaurant is one flat listing record for the agent.
// MenuURL is always absolute.
type Restaurant struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Distance string  `json:"distance"`
	MenuURL  string  `json:"menu_url"`
}

// SearchOptions filter and bound a listing scan.
// MaxResults 0 means unbounded, anything above the cap is clamped
// to keep the payload readable for the model.
type SearchOptions struct {
	MinRating  float64
	MaxResults int
}

const maxResultsCap = 20

// NormalizeListing scans the feed for partner cards and emits one record
// per restaurant. Blocks without a restaurant link are skipped silently,
// records below MinRating are dropped before they count toward the cap.
func NormalizeListing(doc map[string]any, origin string, opts SearchOptions) []Restaurant {
	limit := opts.MaxResults
	if limit > maxResultsCap {
		limit = maxResultsCap
	}

	var results []Restaurant

	feed := digSlice(doc, listingFeedPath...)
	for _, rawSection := range feed {
		section, ok := rawSection.(map[string]any)
		if !ok {
			continue
		}

		blocks, _ := section[keyBlocks].([]any)
		for _, rawBlock := range blocks {
			block, ok := rawBlock.(map[string]any)
			if !ok {
				continue
			}

			templateID, _ := block[keyTemplateID].(string)
			if !strings.Contains(templateID, partnerCardMarker) {
				continue
			}

			data, _ := block[keyBlockData].(map[string]any)

			rating := parseRating(stringField(data, keyPartnerRating, "0"))
			if rating < opts.MinRating {
				continue
			}

			href := digString(data, keyOnTap, keyAction, keyParameters, keyRestaurantHref)
			if href == "" {
				continue
			}

			results = append(results, Restaurant{
				Name:     stringField(data, keyPartnerName, defaultName),
				Rating:   rating,
				Distance: stringField(data, keyDistance, defaultDistance),
				MenuURL:  origin + href,
			})

			if limit > 0 && len(results) >= limit {
				return results
			}
		}
	}

	return results
}

// parseRating reads the leading numeric token of a rating label such as
// "4.5 su 5". Anything unparsable counts as unrated.
func parseRating(raw string) float64 {
	token := strings.SplitN(raw, " ", 2)[0]

	rating, err := strconv.ParseFloat(token, 64)
	if err != nil || rating < 0 {
		return 0
	}

	return rating
}
