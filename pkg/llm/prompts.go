package llm

import (
	"fmt"
	"strings"
)

const insightPromptTemplate = `Analyze this REIT data and provide a brief insight (max 100 words):

REIT: %s (%s)
Current Price: $%.2f
Change: %.2f%%
Dividend Yield: %.2f%%
Market Cap: $%.2fB
P/E Ratio: %.2f
Sector: %s

Provide a concise analysis focusing on:
1. REIT performance and dividend sustainability
2. Sector-specific outlook
3. Investment attractiveness (neutral tone)`

func insightPrompt(snap REITSnapshot) string {
	return fmt.Sprintf(insightPromptTemplate,
		snap.Ticker, snap.Name, snap.Price, snap.ChangePercent,
		snap.Yield, snap.MarketCap, snap.PERatio, snap.Sector)
}

const newsPromptHeader = `Based on current REIT market data, generate a realistic news headline and summary.

Market Context:
`

const newsPromptFooter = `
Create a news item with:
- Realistic headline (max 80 characters)
- Brief summary (max 150 words)
- Category (Market Update, Sector Analysis, Earnings, etc.)
- Impact assessment (positive/negative/neutral)

Output as JSON only, no other text:
{
  "title": "headline",
  "summary": "summary",
  "category": "category",
  "impact": "impact"
}`

func newsPrompt(snaps []REITSnapshot) string {
	var sb strings.Builder
	sb.WriteString(newsPromptHeader)
	for _, s := range snaps {
		sb.WriteString(fmt.Sprintf("- %s (%s): %+.2f%% change, %.2f%% yield, %s sector\n",
			s.Ticker, s.Name, s.ChangePercent, s.Yield, s.Sector))
	}
	sb.WriteString(newsPromptFooter)
	return sb.String()
}
