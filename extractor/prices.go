package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// pricePattern matches currency-amount tokens: a dollar sign, optional
// whitespace, digits, a decimal separator, and exactly two decimals
// (e.g. "$12.50", "$ 5,99").
var pricePattern = regexp.MustCompile(`\$\s*\d+[.,]\d{2}`)

// numberPattern captures the first digit run with an optional decimal
// separator inside a price text.
var numberPattern = regexp.MustCompile(`\d+[.,]?\d*`)

// PriceToken is a currency-amount match located in the document, tied to
// the node containing it. Tokens only live for one extraction pass.
type PriceToken struct {
	Raw  string
	node *html.Node
}

// Container returns the node immediately containing the token.
func (t PriceToken) Container() Node {
	return Node{n: t.node}
}

// PriceTokens scans the document's text nodes for currency-amount tokens
// in document order. Amount validation happens at extraction, not here.
func (d *Document) PriceTokens() []PriceToken {
	var tokens []PriceToken
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && skippedElements[cur.Data] {
			return
		}
		if cur.Type == html.TextNode && pricePattern.MatchString(cur.Data) {
			tokens = append(tokens, PriceToken{Raw: cur.Data, node: cur.Parent})
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return tokens
}

// CleanPrice extracts the numeric value from a price text: the first
// digit run, comma normalized to dot, parsed as a float. Returns false
// for empty or non-numeric text and for non-positive or non-finite
// values. Thousands separators are not supported: "$1,234.99" parses as
// 1.234. Menu prices on the monitored sites stay well below 1000.
func CleanPrice(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil || value <= 0 || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
